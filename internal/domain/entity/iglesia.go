package entity

import "time"

// Iglesia congregación local. Pertenece a un Distrito (obligatorio) y puede
// tener un Pastor asignado. El código es único en todo el sistema.
type Iglesia struct {
	ID        string
	Codigo    string
	Nombre    string
	Direccion string
	Telefono  *string
	DistritoID string
	PastorID   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
