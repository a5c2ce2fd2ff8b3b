package dto

import "time"

// PerfilPastorResponse perfil del pastor con su usuario y jerarquía.
type PerfilPastorResponse struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Apellidos       string     `json:"apellidos"`
	Email           string     `json:"email"`
	Telefono        string     `json:"telefono"`
	FechaOrdenacion *time.Time `json:"fechaOrdenacion,omitempty"`
	Distrito        string     `json:"distrito,omitempty"`
	Asociacion      string     `json:"asociacion,omitempty"`
}

// RegistrarBautismoRequest alta de bautismo por el pastor autenticado.
type RegistrarBautismoRequest struct {
	MiembroID string    `json:"miembroId"`
	Fecha     time.Time `json:"fecha"`
	Lugar     *string   `json:"lugar"`
}

// BautismoResponse bautismo con el nombre del miembro resuelto.
type BautismoResponse struct {
	ID            string    `json:"id"`
	MiembroID     string    `json:"miembroId"`
	NombreMiembro string    `json:"nombreMiembro,omitempty"`
	PastorID      string    `json:"pastorId"`
	Fecha         time.Time `json:"fecha"`
	Lugar         string    `json:"lugar,omitempty"`
}

// BautismoDataResponse envoltura {message, data}.
type BautismoDataResponse struct {
	Message string           `json:"message"`
	Data    BautismoResponse `json:"data"`
}

// BautismoListResponse envoltura {message, data} para el listado.
type BautismoListResponse struct {
	Message string             `json:"message"`
	Data    []BautismoResponse `json:"data"`
}
