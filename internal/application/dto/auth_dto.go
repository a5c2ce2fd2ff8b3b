package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido más rol y referencia de perfil para que la app
// cliente sepa quién es sin decodificar el JWT.
type LoginResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	Rol          string `json:"rol"`
	ReferenciaID string `json:"referenciaId,omitempty"`
}
