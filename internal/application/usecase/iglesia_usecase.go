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

// IglesiaUseCase CRUD de iglesias con validación referencial.
type IglesiaUseCase struct {
	iglesias  repository.IglesiaRepository
	distritos repository.DistritoRepository
	pastores  repository.PastorRepository
}

// NewIglesiaUseCase construye el caso de uso de iglesias.
func NewIglesiaUseCase(
	iglesias repository.IglesiaRepository,
	distritos repository.DistritoRepository,
	pastores repository.PastorRepository,
) *IglesiaUseCase {
	return &IglesiaUseCase{iglesias: iglesias, distritos: distritos, pastores: pastores}
}

// Listar devuelve todas las iglesias con conteos de miembros y eventos.
func (uc *IglesiaUseCase) Listar(ctx context.Context) (*dto.IglesiaListResponse, error) {
	conteos, err := uc.iglesias.ListConConteos(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.IglesiaResponse, 0, len(conteos))
	for _, c := range conteos {
		data = append(data, toIglesiaResponse(&c.Iglesia, c.Miembros, c.Eventos))
	}
	return &dto.IglesiaListResponse{Message: "Iglesias obtenidas exitosamente", Data: data}, nil
}

// Crear valida campos obligatorios, existencia del distrito (y del pastor si
// viene), y unicidad del código.
func (uc *IglesiaUseCase) Crear(ctx context.Context, in dto.CrearIglesiaRequest) (*dto.IglesiaDataResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Codigo) == "" ||
		strings.TrimSpace(in.Direccion) == "" || strings.TrimSpace(in.DistritoID) == "" {
		return nil, fmt.Errorf("%w: nombre, codigo, direccion y distritoId son requeridos", domain.ErrValidation)
	}
	if err := uc.validarDistrito(ctx, in.DistritoID); err != nil {
		return nil, err
	}
	if err := uc.validarPastor(ctx, in.PastorID); err != nil {
		return nil, err
	}
	if err := uc.validarCodigoLibre(ctx, in.Codigo, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	iglesia := &entity.Iglesia{
		ID:         uuid.New().String(),
		Codigo:     strings.TrimSpace(in.Codigo),
		Nombre:     strings.TrimSpace(in.Nombre),
		Direccion:  in.Direccion,
		Telefono:   in.Telefono,
		DistritoID: in.DistritoID,
		PastorID:   in.PastorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.iglesias.Create(ctx, iglesia); err != nil {
		return nil, err
	}
	return &dto.IglesiaDataResponse{
		Message: "Iglesia creada exitosamente",
		Data:    toIglesiaResponse(iglesia, 0, 0),
	}, nil
}

// Editar aplica un merge parcial: solo revalida los campos presentes en la
// petición.
func (uc *IglesiaUseCase) Editar(ctx context.Context, id string, in dto.EditarIglesiaRequest) (*dto.IglesiaDataResponse, error) {
	iglesia, err := uc.iglesias.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iglesia == nil {
		return nil, fmt.Errorf("%w: iglesia", domain.ErrNotFound)
	}

	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, fmt.Errorf("%w: nombre no puede estar vacío", domain.ErrValidation)
		}
		iglesia.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Codigo != nil && strings.TrimSpace(*in.Codigo) != iglesia.Codigo {
		codigo := strings.TrimSpace(*in.Codigo)
		if codigo == "" {
			return nil, fmt.Errorf("%w: codigo no puede estar vacío", domain.ErrValidation)
		}
		if err := uc.validarCodigoLibre(ctx, codigo, iglesia.ID); err != nil {
			return nil, err
		}
		iglesia.Codigo = codigo
	}
	if in.Direccion != nil {
		iglesia.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		iglesia.Telefono = in.Telefono
	}
	if in.DistritoID != nil && *in.DistritoID != iglesia.DistritoID {
		if err := uc.validarDistrito(ctx, *in.DistritoID); err != nil {
			return nil, err
		}
		iglesia.DistritoID = *in.DistritoID
	}
	if in.PastorID != nil {
		if *in.PastorID == "" {
			iglesia.PastorID = nil
		} else {
			if err := uc.validarPastor(ctx, in.PastorID); err != nil {
				return nil, err
			}
			iglesia.PastorID = in.PastorID
		}
	}

	iglesia.UpdatedAt = time.Now()
	if err := uc.iglesias.Update(ctx, iglesia); err != nil {
		return nil, err
	}
	miembros, eventos, err := uc.iglesias.CountDependencias(ctx, iglesia.ID)
	if err != nil {
		return nil, err
	}
	return &dto.IglesiaDataResponse{
		Message: "Iglesia actualizada exitosamente",
		Data:    toIglesiaResponse(iglesia, miembros, eventos),
	}, nil
}

// Eliminar borra la iglesia solo si no tiene miembros ni eventos asociados.
func (uc *IglesiaUseCase) Eliminar(ctx context.Context, id string) error {
	iglesia, err := uc.iglesias.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if iglesia == nil {
		return fmt.Errorf("%w: iglesia", domain.ErrNotFound)
	}
	miembros, eventos, err := uc.iglesias.CountDependencias(ctx, id)
	if err != nil {
		return err
	}
	if miembros > 0 || eventos > 0 {
		return fmt.Errorf("%w: la iglesia tiene %d miembros y %d eventos", domain.ErrTieneDependencias, miembros, eventos)
	}
	return uc.iglesias.Delete(ctx, id)
}

func (uc *IglesiaUseCase) validarDistrito(ctx context.Context, distritoID string) error {
	distrito, err := uc.distritos.GetByID(ctx, distritoID)
	if err != nil {
		return err
	}
	if distrito == nil {
		return fmt.Errorf("%w: el distrito no existe", domain.ErrReferenciaNoExiste)
	}
	return nil
}

func (uc *IglesiaUseCase) validarPastor(ctx context.Context, pastorID *string) error {
	if pastorID == nil || *pastorID == "" {
		return nil
	}
	pastor, err := uc.pastores.GetByID(ctx, *pastorID)
	if err != nil {
		return err
	}
	if pastor == nil {
		return fmt.Errorf("%w: el pastor no existe", domain.ErrReferenciaNoExiste)
	}
	return nil
}

// validarCodigoLibre admite el código si no existe o si pertenece a la misma
// iglesia (excludeID).
func (uc *IglesiaUseCase) validarCodigoLibre(ctx context.Context, codigo, excludeID string) error {
	existente, err := uc.iglesias.GetByCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	if existente != nil && existente.ID != excludeID {
		return domain.ErrCodigoRegistrado
	}
	return nil
}

func toIglesiaResponse(i *entity.Iglesia, miembros, eventos int) dto.IglesiaResponse {
	resp := dto.IglesiaResponse{
		ID:         i.ID,
		Codigo:     i.Codigo,
		Nombre:     i.Nombre,
		Direccion:  i.Direccion,
		DistritoID: i.DistritoID,
		Miembros:   miembros,
		Eventos:    eventos,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
	if i.Telefono != nil {
		resp.Telefono = *i.Telefono
	}
	if i.PastorID != nil {
		resp.PastorID = *i.PastorID
	}
	return resp
}
