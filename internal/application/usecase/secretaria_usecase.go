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

// SecretariaUseCase operaciones de la secretaria de iglesia, acotadas a la
// iglesia asignada en su cuenta.
type SecretariaUseCase struct {
	usuarios     repository.UsuarioRepository
	iglesias     repository.IglesiaRepository
	miembros     repository.MiembroRepository
	eventos      repository.EventoRepository
	distritos    repository.DistritoRepository
	asociaciones repository.AsociacionRepository
}

// NewSecretariaUseCase construye el caso de uso de secretaria.
func NewSecretariaUseCase(
	usuarios repository.UsuarioRepository,
	iglesias repository.IglesiaRepository,
	miembros repository.MiembroRepository,
	eventos repository.EventoRepository,
	distritos repository.DistritoRepository,
	asociaciones repository.AsociacionRepository,
) *SecretariaUseCase {
	return &SecretariaUseCase{
		usuarios:     usuarios,
		iglesias:     iglesias,
		miembros:     miembros,
		eventos:      eventos,
		distritos:    distritos,
		asociaciones: asociaciones,
	}
}

// PerfilIglesia devuelve la iglesia asignada con distrito, asociación y
// contacto del pastor resueltos.
func (uc *SecretariaUseCase) PerfilIglesia(ctx context.Context, usuarioID string) (*dto.PerfilIglesiaResponse, error) {
	iglesia, err := uc.iglesiaAsignada(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PerfilIglesiaResponse{
		ID:        iglesia.ID,
		Codigo:    iglesia.Codigo,
		Nombre:    iglesia.Nombre,
		Direccion: iglesia.Direccion,
	}
	if iglesia.Telefono != nil {
		resp.Telefono = *iglesia.Telefono
	}
	distrito, err := uc.distritos.GetByID(ctx, iglesia.DistritoID)
	if err != nil {
		return nil, err
	}
	if distrito != nil {
		resp.Distrito = distrito.Nombre
		if asociacion, err := uc.asociaciones.GetByID(ctx, distrito.AsociacionID); err != nil {
			return nil, err
		} else if asociacion != nil {
			resp.Asociacion = asociacion.Nombre
		}
	}
	if iglesia.PastorID != nil {
		if usuarioPastor, err := uc.usuarios.GetByPastorID(ctx, *iglesia.PastorID); err != nil {
			return nil, err
		} else if usuarioPastor != nil {
			resp.PastorNombre = usuarioPastor.Nombre + " " + usuarioPastor.Apellidos
			resp.PastorTelefono = usuarioPastor.Telefono
		}
	}
	return resp, nil
}

// Miembros lista los miembros de la iglesia asignada.
func (uc *SecretariaUseCase) Miembros(ctx context.Context, usuarioID string) (*dto.MiembroListResponse, error) {
	iglesia, err := uc.iglesiaAsignada(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	miembros, err := uc.miembros.ListByIglesia(ctx, iglesia.ID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MiembroResponse, 0, len(miembros))
	for _, m := range miembros {
		resp := dto.MiembroResponse{ID: m.ID, FechaNacimiento: m.FechaNacimiento}
		if m.IglesiaID != nil {
			resp.IglesiaID = *m.IglesiaID
		}
		if usuario, err := uc.usuarios.GetByMiembroID(ctx, m.ID); err == nil && usuario != nil {
			resp.Nombre = usuario.Nombre
			resp.Apellidos = usuario.Apellidos
			resp.Email = usuario.Email
			resp.Telefono = usuario.Telefono
		}
		data = append(data, resp)
	}
	return &dto.MiembroListResponse{Message: "Miembros obtenidos exitosamente", Data: data}, nil
}

// CrearEvento registra un evento en la iglesia asignada.
func (uc *SecretariaUseCase) CrearEvento(ctx context.Context, usuarioID string, in dto.CrearEventoRequest) (*dto.EventoDataResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrValidation)
	}
	if in.FechaInicio.IsZero() || in.FechaFin.IsZero() {
		return nil, fmt.Errorf("%w: fechaInicio y fechaFin son requeridas", domain.ErrValidation)
	}
	if in.FechaFin.Before(in.FechaInicio) {
		return nil, fmt.Errorf("%w: fechaFin no puede ser anterior a fechaInicio", domain.ErrValidation)
	}
	iglesia, err := uc.iglesiaAsignada(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	evento := &entity.Evento{
		ID:          uuid.New().String(),
		IglesiaID:   iglesia.ID,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: in.Descripcion,
		FechaInicio: in.FechaInicio,
		FechaFin:    in.FechaFin,
		Lugar:       in.Lugar,
		CreadoPorID: usuarioID,
		CreatedAt:   time.Now(),
	}
	if err := uc.eventos.Create(ctx, evento); err != nil {
		return nil, err
	}
	return &dto.EventoDataResponse{
		Message: "Evento creado exitosamente",
		Data:    toEventoResponse(evento),
	}, nil
}

// iglesiaAsignada resuelve la iglesia de la secretaria desde su cuenta.
func (uc *SecretariaUseCase) iglesiaAsignada(ctx context.Context, usuarioID string) (*entity.Iglesia, error) {
	usuario, err := uc.usuarios.GetByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: usuario", domain.ErrNotFound)
	}
	if usuario.IglesiaID == nil || *usuario.IglesiaID == "" {
		return nil, fmt.Errorf("%w: secretaria no asignada a ninguna iglesia", domain.ErrSinAsignacion)
	}
	iglesia, err := uc.iglesias.GetByID(ctx, *usuario.IglesiaID)
	if err != nil {
		return nil, err
	}
	if iglesia == nil {
		return nil, fmt.Errorf("%w: iglesia asignada", domain.ErrNotFound)
	}
	return iglesia, nil
}

func toEventoResponse(e *entity.Evento) dto.EventoResponse {
	resp := dto.EventoResponse{
		ID:          e.ID,
		IglesiaID:   e.IglesiaID,
		Nombre:      e.Nombre,
		FechaInicio: e.FechaInicio,
		FechaFin:    e.FechaFin,
		CreadoPorID: e.CreadoPorID,
	}
	if e.Descripcion != nil {
		resp.Descripcion = *e.Descripcion
	}
	if e.Lugar != nil {
		resp.Lugar = *e.Lugar
	}
	return resp
}
