package dto

import "time"

// PerfilIglesiaResponse la iglesia asignada a la secretaria con su jerarquía
// y los datos de contacto del pastor.
type PerfilIglesiaResponse struct {
	ID             string `json:"id"`
	Codigo         string `json:"codigo"`
	Nombre         string `json:"nombre"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono,omitempty"`
	Distrito       string `json:"distrito,omitempty"`
	Asociacion     string `json:"asociacion,omitempty"`
	PastorNombre   string `json:"pastorNombre,omitempty"`
	PastorTelefono string `json:"pastorTelefono,omitempty"`
}

// MiembroResponse miembro con los datos de su usuario resueltos.
type MiembroResponse struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Apellidos       string     `json:"apellidos"`
	Email           string     `json:"email"`
	Telefono        string     `json:"telefono"`
	IglesiaID       string     `json:"iglesiaId,omitempty"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
}

// MiembroListResponse envoltura {message, data}.
type MiembroListResponse struct {
	Message string            `json:"message"`
	Data    []MiembroResponse `json:"data"`
}

// CrearEventoRequest alta de evento en la iglesia de la secretaria.
type CrearEventoRequest struct {
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	FechaInicio time.Time `json:"fechaInicio"`
	FechaFin    time.Time `json:"fechaFin"`
	Lugar       *string   `json:"lugar"`
}

// EventoResponse evento creado o listado.
type EventoResponse struct {
	ID          string    `json:"id"`
	IglesiaID   string    `json:"iglesiaId"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	FechaInicio time.Time `json:"fechaInicio"`
	FechaFin    time.Time `json:"fechaFin"`
	Lugar       string    `json:"lugar,omitempty"`
	CreadoPorID string    `json:"creadoPorId"`
}

// EventoDataResponse envoltura {message, data}.
type EventoDataResponse struct {
	Message string         `json:"message"`
	Data    EventoResponse `json:"data"`
}
