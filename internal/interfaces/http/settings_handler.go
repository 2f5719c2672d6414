package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// SettingsHandler maneja los parámetros globales; la escritura es admin-only.
type SettingsHandler struct {
	st *state.Manager
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(st *state.Manager) *SettingsHandler {
	return &SettingsHandler{st: st}
}

// Get godoc
// @Summary      Obtener parámetros globales
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.st.Settings())
}

// Update godoc
// @Summary      Actualizar parámetros globales
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "Parámetros"
// @Success      200   {object}  entity.Settings
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}

	s := entity.Settings{
		LowStockThreshold:      in.LowStockThreshold,
		DefaultReorderQuantity: in.DefaultReorderQuantity,
	}
	if err := h.st.UpdateSettings(s); err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}
