package dto

// NameRequest alta de una etiqueta (categoría o localización).
type NameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// RenameRequest renombre de una etiqueta existente.
type RenameRequest struct {
	OldName string `json:"oldName" validate:"required"`
	NewName string `json:"newName" validate:"required,min=1,max=100"`
}

// SupplierRequest alta o edición de proveedor.
type SupplierRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contactPerson" validate:"omitempty,max=200"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty,max=50"`
}

// SettingsRequest parámetros globales.
type SettingsRequest struct {
	LowStockThreshold      int `json:"lowStockThreshold" validate:"gte=0"`
	DefaultReorderQuantity int `json:"defaultReorderQuantity" validate:"gte=0"`
}
