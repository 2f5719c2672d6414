package ports

import (
	"context"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// LLMService define el puerto de salida hacia los servicios de inteligencia
// artificial. Cualquier adaptador (Gemini, OpenAI, Ollama, mock) implementa
// este contrato; la capa de aplicación no conoce la implementación concreta.
type LLMService interface {
	// GenerateDescription redacta una descripción corta de producto en
	// portugués a partir del nombre y la categoría. El contexto debe llevar
	// un timeout para no bloquear en llamadas externas.
	GenerateDescription(ctx context.Context, name, category string) (string, error)

	// AnalyzeInventory produce un análisis textual del inventario filtrado:
	// salud del stock, riesgos de quiebre y sugerencias de reposición.
	// period y category describen los filtros aplicados, para el prompt.
	AnalyzeInventory(ctx context.Context, products []entity.Product, period, category string) (string, error)
}
