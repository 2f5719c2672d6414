package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/state"
)

// NotificationHandler maneja las notificaciones de stock bajo.
type NotificationHandler struct {
	st *state.Manager
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(st *state.Manager) *NotificationHandler {
	return &NotificationHandler{st: st}
}

// List godoc
// @Summary      Listar notificaciones (más recientes primero)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Notification
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.st.Notifications())
}

// MarkRead godoc
// @Summary      Marcar notificación como leída (idempotente)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      204  "sin contenido"
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	h.st.MarkNotificationRead(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Marcar todas las notificaciones como leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      204  "sin contenido"
// @Router       /api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	h.st.MarkAllNotificationsRead()
	return c.SendStatus(fiber.StatusNoContent)
}
