package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
)

// ReportHandler expone los reportes de movimientos, las exportaciones y el
// análisis por IA.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseFilter lee y valida los filtros comunes de query.
func parseFilter(c *fiber.Ctx) (dto.ReportFilterRequest, error) {
	var in dto.ReportFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return in, err
	}
	if err := dto.Validate(in); err != nil {
		return in, err
	}
	return in, nil
}

// Movements godoc
// @Summary      Reporte de movimientos de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        endDate    query  string  false  "Fecha final YYYY-MM-DD"
// @Param        category   query  string  false  "Categoría o all"
// @Success      200  {object}  report.Result
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	in, err := parseFilter(c)
	if err != nil {
		return validationError(c, err)
	}
	return c.JSON(h.uc.Movements(in.StartDate, in.EndDate, in.Category))
}

// ExportPDF godoc
// @Summary      Exportar productos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        category  query  string  false  "Categoría o all"
// @Success      200  {file}  binary
// @Router       /api/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportPDF(c.Context(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_estoque.pdf"`)
	return c.Send(doc)
}

// ExportSpreadsheet godoc
// @Summary      Exportar productos en planilla
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.ms-excel
// @Param        category  query  string  false  "Categoría o all"
// @Success      200  {file}  binary
// @Router       /api/reports/export/spreadsheet [get]
func (h *ReportHandler) ExportSpreadsheet(c *fiber.Ctx) error {
	doc, err := h.uc.ExportSpreadsheet(c.Context(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_estoque.xls"`)
	return c.Send(doc)
}

// Analysis godoc
// @Summary      Análisis del inventario por IA
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        endDate    query  string  false  "Fecha final YYYY-MM-DD"
// @Param        category   query  string  false  "Categoría o all"
// @Success      200  {object}  dto.AnalysisResponse
// @Router       /api/reports/analysis [get]
func (h *ReportHandler) Analysis(c *fiber.Ctx) error {
	in, err := parseFilter(c)
	if err != nil {
		return validationError(c, err)
	}
	text := h.uc.Analyze(c.Context(), in.StartDate, in.EndDate, in.Category)
	return c.JSON(dto.AnalysisResponse{Analysis: text})
}
