package dto

import "github.com/go-playground/validator/v10"

// validate es la instancia compartida; los tags se compilan una sola vez.
var validate = validator.New()

// Validate corre las reglas `validate` declaradas en los tags del DTO.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
