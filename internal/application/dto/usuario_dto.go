package dto

import "time"

// CrearUsuarioRequest alta genérica con rol explícito (solo SuperADMIN).
// Según el rol se exigen las referencias correspondientes.
type CrearUsuarioRequest struct {
	Nombre       string `json:"nombre"`
	Apellidos    string `json:"apellidos"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Password     string `json:"password"`
	Rol          string `json:"rol"`
	CodigoUnico  string `json:"codigoUnico,omitempty"`
	AsociacionID string `json:"asociacionId,omitempty"`
	DistritoID   string `json:"distritoId,omitempty"`
	IglesiaID    string `json:"iglesiaId,omitempty"`
}

// UsuarioResponse usuario sin hash de contraseña.
type UsuarioResponse struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Apellidos    string    `json:"apellidos"`
	Email        string    `json:"email"`
	Telefono     string    `json:"telefono"`
	Rol          string    `json:"rol"`
	ReferenciaID string    `json:"referenciaId,omitempty"`
	IglesiaID    string    `json:"iglesiaId,omitempty"`
	AsociacionID string    `json:"asociacionId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UsuarioStats agregado del listado de usuarios.
type UsuarioStats struct {
	Total  int            `json:"total"`
	PorRol map[string]int `json:"porRol"`
}

// UsuarioListResponse listado completo más stats.
type UsuarioListResponse struct {
	Message string            `json:"message"`
	Data    []UsuarioResponse `json:"data"`
	Stats   UsuarioStats      `json:"stats"`
}

// CrearUsuarioResponse el usuario creado.
type CrearUsuarioResponse struct {
	Message string          `json:"message"`
	Data    UsuarioResponse `json:"data"`
}
