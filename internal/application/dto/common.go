package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica as tags `validate` de um DTO de entrada.
// A borda HTTP é o único lugar que valida: o motor de cálculo aceita qualquer
// valor (a aritmética não falha), então nada nonsense pode passar daqui.
func Validate(v any) error {
	return validate.Struct(v)
}
