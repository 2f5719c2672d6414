package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/application/ports"
	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/report"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

// Mensajes de degradación del análisis por IA.
const (
	analysisEmpty    = "Nenhum produto encontrado para os filtros selecionados. Não é possível gerar a análise."
	analysisFallback = "Erro ao gerar análise do inventário. Por favor, tente novamente mais tarde."
)

// ReportUseCase es la fachada de reportes: compone el estado del inventario
// con la reconciliación de movimientos, los exportadores y el análisis por IA.
type ReportUseCase struct {
	st    *state.Manager
	pdf   ports.ProductExporter
	sheet ports.ProductExporter
	llm   ports.LLMService
	log   *logger.Logger
}

// NewReportUseCase construye la fachada con sus adaptadores.
func NewReportUseCase(st *state.Manager, pdf, sheet ports.ProductExporter, llm ports.LLMService, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{st: st, pdf: pdf, sheet: sheet, llm: llm, log: log}
}

// FilteredProducts devuelve el catálogo filtrado por categoría; vacía o
// "all" significa todas.
func (uc *ReportUseCase) FilteredProducts(category string) []entity.Product {
	products := uc.st.Products()
	if category == "" || category == report.CategoryAll {
		return products
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Movements reconcilia el log de actividades en movimientos de stock para el
// rango de fechas y la categoría dados. Las fechas van en YYYY-MM-DD; un
// extremo vacío o malformado no restringe.
func (uc *ReportUseCase) Movements(startDate, endDate, category string) report.Result {
	start, end := report.DayRange(startDate, endDate, time.Local)
	f := report.Filter{Start: start, End: end, Category: category}
	return report.Build(uc.st.ActivityLogs(), uc.st.Products(), f)
}

// ExportPDF genera el reporte de productos en PDF para la categoría dada.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, category string) ([]byte, error) {
	doc, err := uc.pdf.ExportProducts(ctx, uc.FilteredProducts(category))
	if err != nil {
		return nil, fmt.Errorf("exportando PDF: %w", err)
	}
	return doc, nil
}

// ExportSpreadsheet genera la planilla de productos para la categoría dada.
func (uc *ReportUseCase) ExportSpreadsheet(ctx context.Context, category string) ([]byte, error) {
	doc, err := uc.sheet.ExportProducts(ctx, uc.FilteredProducts(category))
	if err != nil {
		return nil, fmt.Errorf("exportando planilla: %w", err)
	}
	return doc, nil
}

// Analyze produce el análisis de inventario por IA sobre los productos
// filtrados. Sin productos no hay nada que analizar (y no se llama al LLM);
// el fallo del LLM se degrada a un mensaje presentable.
func (uc *ReportUseCase) Analyze(ctx context.Context, startDate, endDate, category string) string {
	products := uc.FilteredProducts(category)
	if len(products) == 0 {
		return analysisEmpty
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	text, err := uc.llm.AnalyzeInventory(ctx, products, periodLabel(startDate, endDate), category)
	if err != nil {
		uc.log.Error().Err(err).Msg("fallo generando análisis de inventario por IA")
		return analysisFallback
	}
	return text
}

// periodLabel describe el rango de fechas para el prompt del análisis. El
// contexto temporal sólo aplica con ambos extremos presentes.
func periodLabel(startDate, endDate string) string {
	if startDate == "" || endDate == "" {
		return ""
	}
	return fmt.Sprintf("de %s a %s", startDate, endDate)
}
