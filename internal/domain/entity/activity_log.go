package entity

import "time"

// Action es el enum cerrado de acciones auditables.
type Action string

const (
	ActionLogin                 Action = "LOGIN"
	ActionLogout                Action = "LOGOUT"
	ActionCreateProduct         Action = "CREATE_PRODUCT"
	ActionUpdateProduct         Action = "UPDATE_PRODUCT"
	ActionDeleteProduct         Action = "DELETE_PRODUCT"
	ActionUpdateProductQuantity Action = "UPDATE_PRODUCT_QUANTITY"
	ActionAddUser               Action = "ADD_USER"
	ActionDeleteUser            Action = "DELETE_USER"
	ActionUpdateUserPassword    Action = "UPDATE_USER_PASSWORD"
	ActionAddCategory           Action = "ADD_CATEGORY"
	ActionUpdateCategory        Action = "UPDATE_CATEGORY"
	ActionDeleteCategory        Action = "DELETE_CATEGORY"
	ActionAddLocation           Action = "ADD_LOCATION"
	ActionUpdateLocation        Action = "UPDATE_LOCATION"
	ActionDeleteLocation        Action = "DELETE_LOCATION"
	ActionAddSupplier           Action = "ADD_SUPPLIER"
	ActionUpdateSupplier        Action = "UPDATE_SUPPLIER"
	ActionDeleteSupplier        Action = "DELETE_SUPPLIER"
)

// ActivityLog es una entrada del log de actividades: quién hizo qué y cuándo.
// La colección es append-only y se mantiene en orden más-reciente-primero
// para la vista de auditoría; la reconciliación de movimientos re-deriva el
// orden cronológico por timestamp y no confía en la posición en la lista.
//
// Para las acciones de cantidad, Details lleva el nombre del producto y
// OldValue/NewValue las cantidades como texto; para DELETE_PRODUCT, OldValue
// lleva la cantidad existente al momento de eliminar (la "salida" completa).
type ActivityLog struct {
	ID        string    `json:"id"`
	User      string    `json:"user"` // username del actor
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	OldValue  string    `json:"oldValue,omitempty"`
	NewValue  string    `json:"newValue,omitempty"`
}
