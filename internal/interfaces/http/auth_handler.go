package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/pkg/config"
	"github.com/tu-usuario/estoque-pro/pkg/jwt"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	st  *state.Manager
	jwt config.JWTConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(st *state.Manager, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{st: st, jwt: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}

	user, err := h.st.Authenticate(in.Username, in.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := jwt.Generate(h.jwt.Secret, user.ID, user.Username, user.Role, h.jwt.Issuer, h.jwt.Expiration)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      204  "sin contenido"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.st.Logout(GetUsername(c))
	return c.SendStatus(fiber.StatusNoContent)
}
