package entity

import "time"

// Evento actividad programada de una iglesia. CreadoPorID es el usuario
// (normalmente la secretaria) que lo registró.
type Evento struct {
	ID          string
	IglesiaID   string
	Nombre      string
	Descripcion *string
	FechaInicio time.Time
	FechaFin    time.Time
	Lugar       *string
	CreadoPorID string
	CreatedAt   time.Time
}

// Bautismo registro ceremonial: qué pastor bautizó a qué miembro y cuándo.
type Bautismo struct {
	ID        string
	MiembroID string
	PastorID  string
	Fecha     time.Time
	Lugar     *string
	CreatedAt time.Time
}

// Estados de PeticionOracion y CitaVisita.
const (
	EstadoPendiente = "PENDIENTE"
	EstadoAtendida  = "ATENDIDA"
)

// PeticionOracion petición de oración de un miembro.
type PeticionOracion struct {
	ID        string
	MiembroID string
	Texto     string
	Estado    string
	CreatedAt time.Time
}

// CitaVisita solicitud de visita pastoral de un miembro.
type CitaVisita struct {
	ID             string
	MiembroID      string
	Motivo         string
	FechaPropuesta time.Time
	Estado         string
	CreatedAt      time.Time
}
