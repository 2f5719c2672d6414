package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Política de stock bajo: la notificación se dispara en el cruce estricto de
// arriba-del-umbral a en-o-bajo-el-umbral, y la deduplicación garantiza como
// máximo una notificación low_stock sin leer por producto.
// ──────────────────────────────────────────────────────────────────────────────

// TestLowStock_SecuenciaDeCaidasEmiteUnaSola: con umbral 10, la secuencia de
// cantidades 50 → 5 → 3 produce exactamente una notificación: 50→5 cruza el
// umbral; 5→3 ya estaba debajo y además hay una sin leer pendiente.
func TestLowStock_SecuenciaDeCaidasEmiteUnaSola(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct()) // quantity 50
	require.NoError(t, err)

	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 5, 50))
	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 3, 5))

	notifs := m.Notifications()
	require.Len(t, notifs, 1, "50→5→3 con umbral 10 debe emitir una sola notificación")
	assert.Equal(t, entity.NotificationLowStock, notifs[0].Type)
	assert.Equal(t, saved.ID, notifs[0].ProductID)
	assert.False(t, notifs[0].Read)
	assert.Contains(t, notifs[0].Message, "Estoque baixo")
	assert.Contains(t, notifs[0].Message, "CAFÉ 250GR")
}

func TestLowStock_SinCruceNoEmite(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	// 50 → 20: sigue arriba del umbral 10.
	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 20, 50))
	assert.Empty(t, m.Notifications())
}

// TestLowStock_MarcarLeidaRearmaLaPolitica: tras leer la notificación
// pendiente, un nuevo cruce vuelve a emitir.
func TestLowStock_MarcarLeidaRearmaLaPolitica(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 5, 50))
	notifs := m.Notifications()
	require.Len(t, notifs, 1)

	m.MarkNotificationRead(notifs[0].ID)

	// Reposición arriba del umbral y nueva caída: cruce nuevo.
	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 30, 5))
	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 4, 30))

	notifs = m.Notifications()
	require.Len(t, notifs, 2, "leída la anterior, el nuevo cruce emite otra vez")
	assert.False(t, notifs[0].Read, "la nueva entra sin leer al frente")
	assert.True(t, notifs[1].Read)
}

func TestMarkNotificationRead_Idempotente(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)
	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 5, 50))

	id := m.Notifications()[0].ID
	m.MarkNotificationRead(id)
	m.MarkNotificationRead(id)
	m.MarkNotificationRead("no-existe")

	notifs := m.Notifications()
	require.Len(t, notifs, 1)
	assert.True(t, notifs[0].Read)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	m, _ := newManager(t)
	p1, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)
	p2raw := buildTestProduct()
	p2raw.Name = "COPO 50ML"
	p2, err := m.SaveProduct("admin", p2raw)
	require.NoError(t, err)

	require.NoError(t, m.UpdateQuantity("admin", p1.ID, 2, 50))
	require.NoError(t, m.UpdateQuantity("admin", p2.ID, 1, 50))
	require.Len(t, m.Notifications(), 2)

	m.MarkAllNotificationsRead()
	for _, n := range m.Notifications() {
		assert.True(t, n.Read)
	}
}

// TestLowStock_UmbralVigenteAlMomentoDeEvaluar: el umbral se lee de los
// settings actuales, no se captura al crear el producto.
func TestLowStock_UmbralVigenteAlMomentoDeEvaluar(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	require.NoError(t, m.UpdateSettings(entity.Settings{LowStockThreshold: 30, DefaultReorderQuantity: 10}))

	// 50 → 25 cruza el umbral nuevo (30) aunque no el default (10).
	require.NoError(t, m.UpdateQuantity("admin", saved.ID, 25, 50))
	assert.Len(t, m.Notifications(), 1)
}

// TestLowStock_ViaSaveProduct: el cruce también se evalúa cuando la cantidad
// cambia por una edición del producto, no sólo por el ajuste directo.
func TestLowStock_ViaSaveProduct(t *testing.T) {
	m, _ := newManager(t)
	saved, err := m.SaveProduct("admin", buildTestProduct())
	require.NoError(t, err)

	saved.Quantity = 7
	_, err = m.SaveProduct("admin", saved)
	require.NoError(t, err)

	notifs := m.Notifications()
	require.Len(t, notifs, 1)
	assert.Contains(t, notifs[0].Message, "Quantidade atual: 7")
}
