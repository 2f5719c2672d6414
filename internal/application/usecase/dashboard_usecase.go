package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/state"
)

const dashboardTopN = 5

// DashboardUseCase computa los KPIs del inventario sobre el estado actual.
// No hay ventana temporal: el dashboard refleja la foto presente del stock.
type DashboardUseCase struct {
	st *state.Manager
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st *state.Manager) *DashboardUseCase {
	return &DashboardUseCase{st: st}
}

// Summary arma el resumen completo: totales, valor inmovilizado, stock bajo
// contra el umbral vigente, distribución por categoría y top 5 por valor.
func (uc *DashboardUseCase) Summary() dto.DashboardSummaryDTO {
	products := uc.st.Products()
	threshold := uc.st.Settings().LowStockThreshold

	total := decimal.Zero
	summary := dto.DashboardSummaryDTO{
		TotalProducts: len(products),
		CategoryCount: map[string]int{},
	}

	values := make([]dto.ProductValueDTO, 0, len(products))
	for _, p := range products {
		value := p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(value)
		summary.CategoryCount[p.Category]++
		if p.Quantity <= threshold {
			summary.LowStockItems = append(summary.LowStockItems, p)
		}
		values = append(values, dto.ProductValueDTO{
			ID:         p.ID,
			Name:       p.Name,
			Quantity:   p.Quantity,
			CostPrice:  p.CostPrice,
			TotalValue: value,
		})
	}

	sort.SliceStable(values, func(i, j int) bool {
		return values[i].TotalValue.GreaterThan(values[j].TotalValue)
	})
	if len(values) > dashboardTopN {
		values = values[:dashboardTopN]
	}

	summary.TotalStockValue = total
	summary.LowStockCount = len(summary.LowStockItems)
	summary.TopByValue = values
	return summary
}
