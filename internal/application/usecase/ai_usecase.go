package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/application/ports"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

// Mensajes de degradación graciosa: ante un fallo del LLM el caller recibe
// texto presentable, nunca un error crudo del proveedor.
const (
	fallbackDescription = "Erro ao gerar descrição. Tente novamente."
)

// AIUseCase orquesta la generación de descripciones asistida por IA. Aplica
// un timeout de 10 segundos por llamada para que las latencias externas no
// bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm ports.LLMService
	log *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, log: log}
}

// GenerateDescription delega al LLM la redacción de la descripción del
// producto. El fallo se degrada al mensaje de fallback.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, name, category string) string {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.llm.GenerateDescription(ctx, name, category)
	if err != nil {
		uc.log.Error().Err(err).Str("product", name).Msg("fallo generando descripción por IA")
		return fallbackDescription
	}
	return text
}
