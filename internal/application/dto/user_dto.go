package dto

// CreateUserRequest entrada para registrar una cuenta (password en texto,
// el dominio la guarda tal cual).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin common"`
}

// UpdatePasswordRequest cambio de contraseña con confirmación. La igualdad
// de ambos campos se valida en este borde; el dominio sólo ve la contraseña.
type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
