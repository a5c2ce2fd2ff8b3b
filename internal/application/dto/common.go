package dto

// ErrorResponse cuerpo de error HTTP. Code es un código estable para clientes;
// Message es legible para humanos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
