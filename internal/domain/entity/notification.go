package entity

import "time"

// NotificationLowStock es el único tipo de notificación existente.
const NotificationLowStock = "low_stock"

// Notification avisa de un cruce de stock bajo. Una vez creada sólo muta
// su flag Read.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ProductID string    `json:"productId"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
