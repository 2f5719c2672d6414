package state

import (
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// notifyLowStock aplica la deduplicación de la política de stock bajo: como
// máximo una notificación low_stock NO leída por producto. Si ya existe una
// sin leer para el producto, no emite nada; marcar la existente como leída
// rearma la política. Requiere el lock tomado. Devuelve true si emitió.
func (m *Manager) notifyLowStock(productID, message string) bool {
	for _, n := range m.notifications {
		if n.Type == entity.NotificationLowStock && n.ProductID == productID && !n.Read {
			return false
		}
	}
	n := entity.Notification{
		ID:        m.newID(),
		Type:      entity.NotificationLowStock,
		Message:   message,
		ProductID: productID,
		Timestamp: m.now(),
		Read:      false,
	}
	m.notifications = append([]entity.Notification{n}, m.notifications...)
	return true
}

// MarkNotificationRead marca una notificación como leída. Idempotente: un ID
// desconocido o ya leído es un no-op sin error.
func (m *Manager) MarkNotificationRead(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notifications {
		if m.notifications[i].ID == id {
			if !m.notifications[i].Read {
				m.notifications[i].Read = true
				m.persistNotifications()
			}
			return
		}
	}
}

// MarkAllNotificationsRead marca todas las notificaciones como leídas.
func (m *Manager) MarkAllNotificationsRead() {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := false
	for i := range m.notifications {
		if !m.notifications[i].Read {
			m.notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		m.persistNotifications()
	}
}
