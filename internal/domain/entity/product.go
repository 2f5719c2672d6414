package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint es una entrada del histórico de precios de un producto:
// el precio de costo vigente y el instante en que se registró.
type PricePoint struct {
	CostPrice decimal.Decimal `json:"costPrice"`
	Date      time.Time       `json:"date"`
}

// Product representa un producto del inventario.
// Quantity es el stock actual (entero no negativo); CostPrice el precio de
// costo vigente. PriceHistory es append-only y ordenado por fecha de registro:
// cada cambio de CostPrice añade una entrada, nunca reescribe las anteriores.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Quantity        int             `json:"quantity"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	Description     string          `json:"description"`
	LastUpdated     time.Time       `json:"lastUpdated"`
	Location        string          `json:"location"`
	SupplierIDs     []string        `json:"supplierIds"`
	ReorderQuantity int             `json:"reorderQuantity"`
	PriceHistory    []PricePoint    `json:"priceHistory"`
}
