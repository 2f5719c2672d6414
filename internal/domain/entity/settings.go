package entity

// Settings son los parámetros ajustables del inventario. El umbral se lee en
// el momento de evaluar un cruce de stock bajo, no se captura al crear el
// producto.
type Settings struct {
	LowStockThreshold      int `json:"lowStockThreshold"`
	DefaultReorderQuantity int `json:"defaultReorderQuantity"`
}
