package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
)

// AIHandler expone la generación de descripciones de producto.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto por IA
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescriptionRequest  true  "Nombre y categoría"
// @Success      200   {object}  dto.DescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.DescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}

	text := h.uc.GenerateDescription(c.Context(), in.Name, in.Category)
	return c.JSON(dto.DescriptionResponse{Description: text})
}
