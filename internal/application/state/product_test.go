package state_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

func buildTestProduct() entity.Product {
	return entity.Product{
		Name:            "CAFÉ 250GR",
		Category:        "CAIXA",
		Quantity:        50,
		CostPrice:       decimal.NewFromFloat(12.50),
		Location:        "Estoque Principal",
		ReorderQuantity: 10,
	}
}

func TestSaveProduct_AltaInicializaHistorialDePrecios(t *testing.T) {
	m, _ := newManager(t)

	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID, "el alta debe asignar identidad")
	require.Len(t, saved.PriceHistory, 1,
		"el alta debe sembrar el historial con el precio de costo inicial")
	assert.True(t, saved.PriceHistory[0].CostPrice.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, saved.PriceHistory[0].Date, saved.LastUpdated)

	logs := m.ActivityLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionCreateProduct, logs[0].Action)
	assert.Equal(t, "admin", logs[0].User)
}

func TestSaveProduct_CambioDePrecioAppendeAlHistorial(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	saved.CostPrice = decimal.NewFromFloat(15.00)
	updated, err := m.SaveProduct("admin", saved)
	require.NoError(t, err)

	require.Len(t, updated.PriceHistory, 2,
		"cada cambio de precio appende un punto; nunca reescribe los anteriores")
	assert.True(t, updated.PriceHistory[0].CostPrice.Equal(decimal.NewFromFloat(12.50)),
		"el punto original debe quedar intacto")
	assert.True(t, updated.PriceHistory[1].CostPrice.Equal(decimal.NewFromFloat(15.00)))
	assert.True(t, updated.PriceHistory[1].Date.After(updated.PriceHistory[0].Date),
		"las fechas del historial deben ser monótonas")
}

func TestSaveProduct_PrecioSinCambioNoAppende(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	saved.Description = "Café torrado e moído"
	updated, err := m.SaveProduct("admin", saved)
	require.NoError(t, err)

	assert.Len(t, updated.PriceHistory, 1,
		"editar sin tocar el precio no debe agregar puntos al historial")
}

// TestSaveProduct_EdicionCompuestaProduceDosEntradas verifica que una edición
// que cambia precio y cantidad a la vez deja dos entradas de log: la de
// cantidad (con old/new) y la de actualización con el detalle del precio.
func TestSaveProduct_EdicionCompuestaProduceDosEntradas(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	saved.CostPrice = decimal.NewFromFloat(14.00)
	saved.Quantity = 60
	_, err = m.SaveProduct("admin", saved)
	require.NoError(t, err)

	logs := m.ActivityLogs()
	require.Len(t, logs, 3, "alta + cantidad + actualización")

	// Orden de reposo más-reciente-primero: la entrada de actualización quedó
	// al frente, la de cantidad detrás.
	assert.Equal(t, entity.ActionUpdateProduct, logs[0].Action)
	assert.Contains(t, logs[0].Details, "Preço de Custo: R$ 12.50 -> R$ 14.00")
	assert.Equal(t, entity.ActionUpdateProductQuantity, logs[1].Action)
	assert.Equal(t, "50", logs[1].OldValue)
	assert.Equal(t, "60", logs[1].NewValue)
}

func TestSaveProduct_CambioDeLocalizacionEnElDetalle(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	saved.Location = "Garagem"
	_, err = m.SaveProduct("admin", saved)
	require.NoError(t, err)

	logs := m.ActivityLogs()
	assert.Contains(t, logs[0].Details, "Localização: Estoque Principal -> Garagem")
}

func TestSaveProduct_Validaciones(t *testing.T) {
	m, _ := newManager(t)

	sinNombre := buildTestProduct()
	sinNombre.Name = "  "
	_, err := m.SaveProduct("admin", sinNombre)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío debe rechazarse")

	negativo := buildTestProduct()
	negativo.Quantity = -1
	_, err = m.SaveProduct("admin", negativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")

	costoNegativo := buildTestProduct()
	costoNegativo.CostPrice = decimal.NewFromFloat(-1)
	_, err = m.SaveProduct("admin", costoNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "costo negativo debe rechazarse")
}

func TestDeleteProduct_CapturaCantidadComoOldValue(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	require.NoError(t, m.DeleteProduct("admin", saved.ID))

	logs := m.ActivityLogs()
	require.Equal(t, entity.ActionDeleteProduct, logs[0].Action)
	assert.Equal(t, "50", logs[0].OldValue,
		"la entrada DELETE_PRODUCT guarda la cantidad al momento de eliminar")
	assert.Empty(t, m.Products())
}

func TestDeleteProduct_IDDesconocido(t *testing.T) {
	m, _ := newManager(t)
	err := m.DeleteProduct("admin", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateQuantity_NegativaEsNoOpSilencioso(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	err = m.UpdateQuantity("admin", saved.ID, -5, saved.Quantity)
	require.NoError(t, err, "la cantidad negativa se ignora sin error")

	got, ok := m.ProductByID(saved.ID)
	require.True(t, ok)
	assert.Equal(t, 50, got.Quantity, "la cantidad no debe cambiar")
	assert.Len(t, m.ActivityLogs(), 1, "el no-op no deja entrada en el log")
}

func TestUpdateQuantity_ApuntaOldYNew(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	require.NoError(t, m.UpdateQuantity("usuario", saved.ID, 45, 50))

	logs := m.ActivityLogs()
	require.Equal(t, entity.ActionUpdateProductQuantity, logs[0].Action)
	assert.Equal(t, "usuario", logs[0].User)
	assert.Equal(t, "50", logs[0].OldValue)
	assert.Equal(t, "45", logs[0].NewValue)
}

// TestManager_PersistenciaSobrevivaReinicio verifica el ciclo completo:
// mutar, persistir y reconstruir un Manager nuevo sobre el mismo store.
func TestManager_PersistenciaSobreviveReinicio(t *testing.T) {
	m, store := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	m2 := state.New(store, logger.Nop())
	got, ok := m2.ProductByID(saved.ID)
	require.True(t, ok, "el producto debe sobrevivir al reinicio")
	assert.Equal(t, saved.Name, got.Name)
	assert.True(t, got.CostPrice.Equal(saved.CostPrice))
	assert.Len(t, m2.ActivityLogs(), 1)
}
