package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: los KPIs del
// inventario en su estado actual.
type DashboardSummaryDTO struct {
	TotalProducts   int              `json:"totalProducts"`
	TotalStockValue decimal.Decimal  `json:"totalStockValue"` // Σ costo × cantidad
	LowStockCount   int              `json:"lowStockCount"`
	LowStockItems   []entity.Product `json:"lowStockItems"`
	CategoryCount   map[string]int   `json:"categoryCount"`

	// Top 5 productos por valor inmovilizado (costo × cantidad, descendente).
	TopByValue []ProductValueDTO `json:"topByValue"`
}

// ProductValueDTO resumen de un producto para el widget de valor inmovilizado.
type ProductValueDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	CostPrice  decimal.Decimal `json:"costPrice"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
