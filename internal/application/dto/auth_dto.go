package dto

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT y la cuenta autenticada (sin password).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de una cuenta (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewUserResponse proyecta la entidad sin exponer la contraseña.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}
