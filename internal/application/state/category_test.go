package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

func supplierWith(id, name string) entity.Supplier {
	return entity.Supplier{ID: id, Name: name}
}

func TestAddCategory_DuplicadoCaseInsensitive(t *testing.T) {
	m, _ := newManager(t)

	err := m.AddCategory("admin", "caixa")
	assert.ErrorIs(t, err, domain.ErrDuplicate, "CAIXA ya existe; caixa es la misma etiqueta")
}

func TestAddCategory_MantieneOrdenPortugues(t *testing.T) {
	m, _ := newManager(t)

	require.NoError(t, m.AddCategory("admin", "GALÃO"))
	cats := m.Categories()
	assert.Equal(t, []string{"CAIXA", "GALÃO", "KG", "PACOTE", "UNITÁRIO"}, cats,
		"las etiquetas se mantienen en orden de colación portuguesa")
}

// TestUpdateCategory_CascadeaAProductos: renombrar una categoría actualiza
// todos los productos que la referenciaban.
func TestUpdateCategory_CascadeaAProductos(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct()) // categoría CAIXA
	require.NoError(t, err)

	require.NoError(t, m.UpdateCategory("admin", "CAIXA", "CAIXA GRANDE"))

	got, ok := m.ProductByID(saved.ID)
	require.True(t, ok)
	assert.Equal(t, "CAIXA GRANDE", got.Category)
	assert.NotContains(t, m.Categories(), "CAIXA")
	assert.Contains(t, m.Categories(), "CAIXA GRANDE")

	logs := m.ActivityLogs()
	assert.Contains(t, logs[0].Details, `de "CAIXA" para "CAIXA GRANDE"`)
}

func TestUpdateCategory_MismoNombreEsNoOp(t *testing.T) {
	m, _ := newManager(t)

	require.NoError(t, m.UpdateCategory("admin", "CAIXA", "CAIXA"))
	assert.Empty(t, m.ActivityLogs())
}

// TestDeleteCategory_GuardDeUso: una categoría referenciada por algún
// producto no puede eliminarse.
func TestDeleteCategory_GuardDeUso(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	err = m.DeleteCategory("admin", "CAIXA")
	assert.ErrorIs(t, err, domain.ErrInUse)
	assert.Contains(t, m.Categories(), "CAIXA")
}

func TestDeleteCategory_SinUso(t *testing.T) {
	m, _ := newManager(t)

	require.NoError(t, m.DeleteCategory("admin", "KG"))
	assert.NotContains(t, m.Categories(), "KG")
}

// ── Localizaciones: mismo patrón que categorías ───────────────────────────────

func TestUpdateLocation_CascadeaAProductos(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct()) // Estoque Principal
	require.NoError(t, err)

	require.NoError(t, m.UpdateLocation("admin", "Estoque Principal", "Depósito 2"))

	got, ok := m.ProductByID(saved.ID)
	require.True(t, ok)
	assert.Equal(t, "Depósito 2", got.Location)
}

func TestDeleteLocation_GuardDeUso(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	err = m.DeleteLocation("admin", "Estoque Principal")
	assert.ErrorIs(t, err, domain.ErrInUse)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// TestDeleteSupplier_GuardPorIdentidad: el guard de uso de proveedores mira
// la pertenencia por ID en la lista del producto, no el nombre.
func TestDeleteSupplier_GuardPorIdentidad(t *testing.T) {
	m, _ := newManager(t)
	p := buildTestProduct()
	p.SupplierIDs = []string{"sup-1"}
	_, err := m.SaveProduct("admin", p)
	require.NoError(t, err)

	err = m.DeleteSupplier("admin", "sup-1")
	assert.ErrorIs(t, err, domain.ErrInUse)

	require.NoError(t, m.DeleteSupplier("admin", "sup-2"))
	assert.Len(t, m.Suppliers(), 1)
}

func TestUpdateSupplier_Inexistente(t *testing.T) {
	m, _ := newManager(t)

	err := m.UpdateSupplier("admin", supplierWith("no-existe", "Nadie"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
