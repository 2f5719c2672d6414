package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/state"
)

// CatalogHandler maneja las etiquetas del catálogo: categorías y
// localizaciones comparten operaciones, así que un solo handler parametriza
// ambas con las funciones del Manager.
type CatalogHandler struct {
	st *state.Manager
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(st *state.Manager) *CatalogHandler {
	return &CatalogHandler{st: st}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.st.Categories())
}

// AddCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre"
// @Success      201   {array}  string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) AddCategory(c *fiber.Ctx) error {
	return h.addLabel(c, h.st.AddCategory, h.st.Categories)
}

// RenameCategory godoc
// @Summary      Renombrar categoría (cascadea a los productos)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RenameRequest  true  "Nombres anterior y nuevo"
// @Success      200   {array}  string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories [put]
func (h *CatalogHandler) RenameCategory(c *fiber.Ctx) error {
	return h.renameLabel(c, h.st.UpdateCategory, h.st.Categories)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría sin uso
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  true  "Nombre de la categoría"
// @Success      204   "sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	return h.deleteLabel(c, h.st.DeleteCategory)
}

// ── Localizaciones ────────────────────────────────────────────────────────────

// ListLocations godoc
// @Summary      Listar localizaciones
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	return c.JSON(h.st.Locations())
}

// AddLocation godoc
// @Summary      Crear localización
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre"
// @Success      201   {array}  string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *CatalogHandler) AddLocation(c *fiber.Ctx) error {
	return h.addLabel(c, h.st.AddLocation, h.st.Locations)
}

// RenameLocation godoc
// @Summary      Renombrar localización (cascadea a los productos)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RenameRequest  true  "Nombres anterior y nuevo"
// @Success      200   {array}  string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations [put]
func (h *CatalogHandler) RenameLocation(c *fiber.Ctx) error {
	return h.renameLabel(c, h.st.UpdateLocation, h.st.Locations)
}

// DeleteLocation godoc
// @Summary      Eliminar localización sin uso
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  true  "Nombre de la localización"
// @Success      204   "sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [delete]
func (h *CatalogHandler) DeleteLocation(c *fiber.Ctx) error {
	return h.deleteLabel(c, h.st.DeleteLocation)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (h *CatalogHandler) addLabel(c *fiber.Ctx, add func(actor, name string) error, list func() []string) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	if err := add(GetUsername(c), in.Name); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(list())
}

func (h *CatalogHandler) renameLabel(c *fiber.Ctx, rename func(actor, oldName, newName string) error, list func() []string) error {
	var in dto.RenameRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	if err := rename(GetUsername(c), in.OldName, in.NewName); err != nil {
		return respondError(c, err)
	}
	return c.JSON(list())
}

func (h *CatalogHandler) deleteLabel(c *fiber.Ctx, del func(actor, name string) error) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "query param name requerido"})
	}
	if err := del(GetUsername(c), name); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
