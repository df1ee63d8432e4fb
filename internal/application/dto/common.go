package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con detalle por campo.
type ValidationErrorResponse struct {
	Code   string              `json:"code"`
	Errors map[string][]string `json:"errors"`
}

// MessageResponse respuesta simple con mensaje (ej. seed exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}
