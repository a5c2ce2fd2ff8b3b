package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

// MiembroUseCase operaciones del miembro autenticado: peticiones de oración
// y solicitudes de visita pastoral.
type MiembroUseCase struct {
	miembros   repository.MiembroRepository
	peticiones repository.PeticionOracionRepository
	citas      repository.CitaVisitaRepository
}

// NewMiembroUseCase construye el caso de uso del miembro.
func NewMiembroUseCase(
	miembros repository.MiembroRepository,
	peticiones repository.PeticionOracionRepository,
	citas repository.CitaVisitaRepository,
) *MiembroUseCase {
	return &MiembroUseCase{miembros: miembros, peticiones: peticiones, citas: citas}
}

// CrearPeticion registra una petición de oración en estado PENDIENTE.
func (uc *MiembroUseCase) CrearPeticion(ctx context.Context, miembroID string, in dto.CrearPeticionRequest) (*dto.PeticionDataResponse, error) {
	if strings.TrimSpace(in.Texto) == "" {
		return nil, fmt.Errorf("%w: texto es requerido", domain.ErrValidation)
	}
	if err := uc.validarMiembro(ctx, miembroID); err != nil {
		return nil, err
	}
	peticion := &entity.PeticionOracion{
		ID:        uuid.New().String(),
		MiembroID: miembroID,
		Texto:     strings.TrimSpace(in.Texto),
		Estado:    entity.EstadoPendiente,
		CreatedAt: time.Now(),
	}
	if err := uc.peticiones.Create(ctx, peticion); err != nil {
		return nil, err
	}
	return &dto.PeticionDataResponse{
		Message: "Petición de oración registrada exitosamente",
		Data:    toPeticionResponse(peticion),
	}, nil
}

// Peticiones lista las peticiones de oración del miembro.
func (uc *MiembroUseCase) Peticiones(ctx context.Context, miembroID string) (*dto.PeticionListResponse, error) {
	peticiones, err := uc.peticiones.ListByMiembro(ctx, miembroID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PeticionResponse, 0, len(peticiones))
	for _, p := range peticiones {
		data = append(data, toPeticionResponse(p))
	}
	return &dto.PeticionListResponse{Message: "Peticiones obtenidas exitosamente", Data: data}, nil
}

// CrearCita registra una solicitud de visita pastoral en estado PENDIENTE.
func (uc *MiembroUseCase) CrearCita(ctx context.Context, miembroID string, in dto.CrearCitaRequest) (*dto.CitaDataResponse, error) {
	if strings.TrimSpace(in.Motivo) == "" {
		return nil, fmt.Errorf("%w: motivo es requerido", domain.ErrValidation)
	}
	if in.FechaPropuesta.IsZero() {
		return nil, fmt.Errorf("%w: fechaPropuesta es requerida", domain.ErrValidation)
	}
	if err := uc.validarMiembro(ctx, miembroID); err != nil {
		return nil, err
	}
	cita := &entity.CitaVisita{
		ID:             uuid.New().String(),
		MiembroID:      miembroID,
		Motivo:         strings.TrimSpace(in.Motivo),
		FechaPropuesta: in.FechaPropuesta,
		Estado:         entity.EstadoPendiente,
		CreatedAt:      time.Now(),
	}
	if err := uc.citas.Create(ctx, cita); err != nil {
		return nil, err
	}
	return &dto.CitaDataResponse{
		Message: "Cita solicitada exitosamente",
		Data:    toCitaResponse(cita),
	}, nil
}

// Citas lista las solicitudes de visita del miembro.
func (uc *MiembroUseCase) Citas(ctx context.Context, miembroID string) (*dto.CitaListResponse, error) {
	citas, err := uc.citas.ListByMiembro(ctx, miembroID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CitaResponse, 0, len(citas))
	for _, c := range citas {
		data = append(data, toCitaResponse(c))
	}
	return &dto.CitaListResponse{Message: "Citas obtenidas exitosamente", Data: data}, nil
}

func (uc *MiembroUseCase) validarMiembro(ctx context.Context, miembroID string) error {
	miembro, err := uc.miembros.GetByID(ctx, miembroID)
	if err != nil {
		return err
	}
	if miembro == nil {
		return fmt.Errorf("%w: miembro", domain.ErrNotFound)
	}
	return nil
}

func toPeticionResponse(p *entity.PeticionOracion) dto.PeticionResponse {
	return dto.PeticionResponse{
		ID:        p.ID,
		Texto:     p.Texto,
		Estado:    p.Estado,
		CreatedAt: p.CreatedAt,
	}
}

func toCitaResponse(c *entity.CitaVisita) dto.CitaResponse {
	return dto.CitaResponse{
		ID:             c.ID,
		Motivo:         c.Motivo,
		FechaPropuesta: c.FechaPropuesta,
		Estado:         c.Estado,
		CreatedAt:      c.CreatedAt,
	}
}
