package entity

import "time"

// Asociacion contenedor superior de la jerarquía organizativa.
type Asociacion struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Distrito agrupación de iglesias dentro de una Asociacion.
type Distrito struct {
	ID           string
	Nombre       string
	AsociacionID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
