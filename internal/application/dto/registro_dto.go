package dto

// RegistroAdminRequest alta del SuperADMIN inicial (endpoint público).
type RegistroAdminRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Password  string `json:"password"`
}

// RegistroAdminResponse confirmación del alta de SuperADMIN.
type RegistroAdminResponse struct {
	Message   string `json:"message"`
	UsuarioID string `json:"usuarioId"`
	Email     string `json:"email"`
}

// RegistroSecretariaRequest alta de secretaria de iglesia (IglesiaID) o de
// asociación (AsociacionID), según el endpoint. El rol lo fija el servidor.
type RegistroSecretariaRequest struct {
	Nombre       string `json:"nombre"`
	Apellidos    string `json:"apellidos"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Password     string `json:"password"`
	IglesiaID    string `json:"iglesiaId,omitempty"`
	AsociacionID string `json:"asociacionId,omitempty"`
}

// RegistroSecretariaResponse la secretaria creada.
type RegistroSecretariaResponse struct {
	Message    string          `json:"message"`
	Secretaria UsuarioResponse `json:"secretaria"`
}
