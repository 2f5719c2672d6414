package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/state"
)

// ActivityHandler expone el log de actividades.
type ActivityHandler struct {
	st *state.Manager
}

// NewActivityHandler construye el handler.
func NewActivityHandler(st *state.Manager) *ActivityHandler {
	return &ActivityHandler{st: st}
}

// List godoc
// @Summary      Listar el log de actividades (más recientes primero)
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.ActivityLog
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.st.ActivityLogs())
}
