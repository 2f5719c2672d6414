package dto

// ReportFilterRequest filtros de los reportes: rango de fechas en formato
// YYYY-MM-DD (extremos vacíos = sin restricción) y categoría ("all" o vacía
// = todas).
type ReportFilterRequest struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Category  string `query:"category"`
}

// AnalysisResponse salida del análisis de inventario por IA.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// DescriptionRequest entrada para generar la descripción de un producto.
type DescriptionRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// DescriptionResponse salida con la descripción generada.
type DescriptionResponse struct {
	Description string `json:"description"`
}
