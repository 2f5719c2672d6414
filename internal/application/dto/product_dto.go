package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// SaveProductRequest entrada para crear o editar un producto. El ID vacío
// significa alta; presente, edición.
type SaveProductRequest struct {
	ID              string          `json:"id"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Category        string          `json:"category" validate:"required"`
	Quantity        int             `json:"quantity" validate:"gte=0"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	Description     string          `json:"description" validate:"omitempty,max=2000"`
	Location        string          `json:"location" validate:"omitempty,max=200"`
	SupplierIDs     []string        `json:"supplierIds"`
	ReorderQuantity int             `json:"reorderQuantity" validate:"gte=0"`
}

// ToEntity materializa el request como entidad de dominio.
func (r SaveProductRequest) ToEntity() entity.Product {
	return entity.Product{
		ID:              r.ID,
		Name:            r.Name,
		Category:        r.Category,
		Quantity:        r.Quantity,
		CostPrice:       r.CostPrice,
		Description:     r.Description,
		Location:        r.Location,
		SupplierIDs:     r.SupplierIDs,
		ReorderQuantity: r.ReorderQuantity,
	}
}

// UpdateQuantityRequest ajuste directo de stock. Sin regla gte: la cantidad
// negativa la resuelve el dominio como no-op silencioso.
type UpdateQuantityRequest struct {
	NewQuantity int `json:"newQuantity"`
	OldQuantity int `json:"oldQuantity"`
}
