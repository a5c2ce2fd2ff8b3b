package dto

import "time"

// CrearPeticionRequest nueva petición de oración del miembro autenticado.
type CrearPeticionRequest struct {
	Texto string `json:"texto"`
}

// PeticionResponse petición de oración.
type PeticionResponse struct {
	ID        string    `json:"id"`
	Texto     string    `json:"texto"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"createdAt"`
}

// PeticionDataResponse envoltura {message, data}.
type PeticionDataResponse struct {
	Message string           `json:"message"`
	Data    PeticionResponse `json:"data"`
}

// PeticionListResponse envoltura {message, data}.
type PeticionListResponse struct {
	Message string             `json:"message"`
	Data    []PeticionResponse `json:"data"`
}

// CrearCitaRequest solicitud de visita pastoral.
type CrearCitaRequest struct {
	Motivo         string    `json:"motivo"`
	FechaPropuesta time.Time `json:"fechaPropuesta"`
}

// CitaResponse cita de visita.
type CitaResponse struct {
	ID             string    `json:"id"`
	Motivo         string    `json:"motivo"`
	FechaPropuesta time.Time `json:"fechaPropuesta"`
	Estado         string    `json:"estado"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CitaDataResponse envoltura {message, data}.
type CitaDataResponse struct {
	Message string       `json:"message"`
	Data    CitaResponse `json:"data"`
}

// CitaListResponse envoltura {message, data}.
type CitaListResponse struct {
	Message string         `json:"message"`
	Data    []CitaResponse `json:"data"`
}
