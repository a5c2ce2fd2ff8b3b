package entity

import "time"

// Pastor perfil ministerial. El distrito delimita todo su acceso
// (iglesias, miembros, bautismos).
type Pastor struct {
	ID              string
	DistritoID      *string
	AsociacionID    *string
	FechaOrdenacion *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Secretario perfil administrativo. Una secretaria de iglesia tiene IglesiaID;
// una secretaria de asociación tiene AsociacionID (el vínculo vive en Usuario,
// aquí solo datos propios del perfil).
type Secretario struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Miembro perfil de feligrés, opcionalmente adscrito a una iglesia.
type Miembro struct {
	ID              string
	IglesiaID       *string
	FechaNacimiento *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
