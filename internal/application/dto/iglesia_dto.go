package dto

import "time"

// CrearIglesiaRequest alta de iglesia. Nombre, Codigo, Direccion y DistritoID
// son obligatorios; Telefono y PastorID opcionales.
type CrearIglesiaRequest struct {
	Nombre     string  `json:"nombre"`
	Codigo     string  `json:"codigo"`
	Direccion  string  `json:"direccion"`
	Telefono   *string `json:"telefono"`
	DistritoID string  `json:"distritoId"`
	PastorID   *string `json:"pastorId"`
}

// EditarIglesiaRequest merge parcial: solo se tocan los campos presentes.
type EditarIglesiaRequest struct {
	Nombre     *string `json:"nombre"`
	Codigo     *string `json:"codigo"`
	Direccion  *string `json:"direccion"`
	Telefono   *string `json:"telefono"`
	DistritoID *string `json:"distritoId"`
	PastorID   *string `json:"pastorId"`
}

// IglesiaResponse iglesia con conteos de dependencias.
type IglesiaResponse struct {
	ID         string    `json:"id"`
	Codigo     string    `json:"codigo"`
	Nombre     string    `json:"nombre"`
	Direccion  string    `json:"direccion"`
	Telefono   string    `json:"telefono,omitempty"`
	DistritoID string    `json:"distritoId"`
	PastorID   string    `json:"pastorId,omitempty"`
	Miembros   int       `json:"miembros"`
	Eventos    int       `json:"eventos"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IglesiaDataResponse envoltura {message, data} para operaciones sobre una iglesia.
type IglesiaDataResponse struct {
	Message string          `json:"message"`
	Data    IglesiaResponse `json:"data"`
}

// IglesiaListResponse envoltura {message, data} para el listado.
type IglesiaListResponse struct {
	Message string            `json:"message"`
	Data    []IglesiaResponse `json:"data"`
}
