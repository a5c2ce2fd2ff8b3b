package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/iglesias-api/internal/application/auth"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

// UsuarioUseCase administración de cuentas (solo SuperADMIN).
type UsuarioUseCase struct {
	usuarios     repository.UsuarioRepository
	iglesias     repository.IglesiaRepository
	distritos    repository.DistritoRepository
	asociaciones repository.AsociacionRepository
	tx           RegistroTxRunner
}

// NewUsuarioUseCase construye el caso de uso de administración de usuarios.
func NewUsuarioUseCase(
	usuarios repository.UsuarioRepository,
	iglesias repository.IglesiaRepository,
	distritos repository.DistritoRepository,
	asociaciones repository.AsociacionRepository,
	tx RegistroTxRunner,
) *UsuarioUseCase {
	return &UsuarioUseCase{
		usuarios:     usuarios,
		iglesias:     iglesias,
		distritos:    distritos,
		asociaciones: asociaciones,
		tx:           tx,
	}
}

// Listar devuelve todos los usuarios más las estadísticas agregadas por rol.
func (uc *UsuarioUseCase) Listar(ctx context.Context) (*dto.UsuarioListResponse, error) {
	usuarios, err := uc.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	porRol, err := uc.usuarios.CountByRol(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		data = append(data, toUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Message: "Usuarios obtenidos exitosamente",
		Data:    data,
		Stats:   dto.UsuarioStats{Total: len(usuarios), PorRol: porRol},
	}, nil
}

// Crear da de alta un usuario con el rol indicado, creando el perfil que el
// rol exige dentro de una transacción. Las referencias requeridas por rol:
// PASTOR exige distritoId, SECRETARIA iglesiaId, SECRETARIA_ASOCIACION
// asociacionId, MIEMBRO iglesiaId opcional.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error) {
	if err := validarDatosCuenta(in.Nombre, in.Apellidos, in.Email, in.Telefono, in.Password); err != nil {
		return nil, err
	}
	if !entity.RolValido(in.Rol) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrValidation, in.Rol)
	}
	existente, err := uc.usuarios.GetByEmail(ctx, auth.NormalizarEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailRegistrado
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellidos:    in.Apellidos,
		Email:        auth.NormalizarEmail(in.Email),
		Telefono:     in.Telefono,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var crearPerfil func(
		pastores repository.PastorRepository,
		secretarios repository.SecretarioRepository,
		miembros repository.MiembroRepository,
	) error

	switch strings.ToLower(in.Rol) {
	case strings.ToLower(entity.RolSuperAdmin):
		usuario.Rol = entity.RolSuperAdmin

	case strings.ToLower(entity.RolPastor):
		if in.DistritoID == "" {
			return nil, fmt.Errorf("%w: distritoId es requerido para rol PASTOR", domain.ErrValidation)
		}
		distrito, err := uc.distritos.GetByID(ctx, in.DistritoID)
		if err != nil {
			return nil, err
		}
		if distrito == nil {
			return nil, fmt.Errorf("%w: el distrito no existe", domain.ErrReferenciaNoExiste)
		}
		pastor := &entity.Pastor{
			ID:           uuid.New().String(),
			DistritoID:   &in.DistritoID,
			AsociacionID: &distrito.AsociacionID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		usuario.Rol = entity.RolPastor
		usuario.PastorID = &pastor.ID
		crearPerfil = func(pastores repository.PastorRepository, _ repository.SecretarioRepository, _ repository.MiembroRepository) error {
			return pastores.Create(ctx, pastor)
		}

	case strings.ToLower(entity.RolSecretaria):
		if in.IglesiaID == "" {
			return nil, fmt.Errorf("%w: iglesiaId es requerido para rol SECRETARIA", domain.ErrValidation)
		}
		if err := uc.validarIglesia(ctx, in.IglesiaID); err != nil {
			return nil, err
		}
		secretario := &entity.Secretario{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
		usuario.Rol = entity.RolSecretaria
		usuario.SecretarioID = &secretario.ID
		usuario.IglesiaID = &in.IglesiaID
		crearPerfil = func(_ repository.PastorRepository, secretarios repository.SecretarioRepository, _ repository.MiembroRepository) error {
			return secretarios.Create(ctx, secretario)
		}

	case strings.ToLower(entity.RolSecretariaAsociacion):
		if in.AsociacionID == "" {
			return nil, fmt.Errorf("%w: asociacionId es requerido para rol SECRETARIA_ASOCIACION", domain.ErrValidation)
		}
		asociacion, err := uc.asociaciones.GetByID(ctx, in.AsociacionID)
		if err != nil {
			return nil, err
		}
		if asociacion == nil {
			return nil, fmt.Errorf("%w: la asociación no existe", domain.ErrReferenciaNoExiste)
		}
		secretario := &entity.Secretario{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
		usuario.Rol = entity.RolSecretariaAsociacion
		usuario.SecretarioID = &secretario.ID
		usuario.AsociacionID = &in.AsociacionID
		crearPerfil = func(_ repository.PastorRepository, secretarios repository.SecretarioRepository, _ repository.MiembroRepository) error {
			return secretarios.Create(ctx, secretario)
		}

	case strings.ToLower(entity.RolMiembro):
		miembro := &entity.Miembro{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
		if in.IglesiaID != "" {
			if err := uc.validarIglesia(ctx, in.IglesiaID); err != nil {
				return nil, err
			}
			miembro.IglesiaID = &in.IglesiaID
			usuario.IglesiaID = &in.IglesiaID
		}
		usuario.Rol = entity.RolMiembro
		usuario.MiembroID = &miembro.ID
		crearPerfil = func(_ repository.PastorRepository, _ repository.SecretarioRepository, miembros repository.MiembroRepository) error {
			return miembros.Create(ctx, miembro)
		}
	}

	err = uc.tx.RunRegistro(ctx, func(
		usuarios repository.UsuarioRepository,
		pastores repository.PastorRepository,
		secretarios repository.SecretarioRepository,
		miembros repository.MiembroRepository,
	) error {
		if crearPerfil != nil {
			if err := crearPerfil(pastores, secretarios, miembros); err != nil {
				return err
			}
		}
		return usuarios.Create(ctx, usuario)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CrearUsuarioResponse{
		Message: "Usuario creado exitosamente",
		Data:    toUsuarioResponse(usuario),
	}, nil
}

func (uc *UsuarioUseCase) validarIglesia(ctx context.Context, iglesiaID string) error {
	iglesia, err := uc.iglesias.GetByID(ctx, iglesiaID)
	if err != nil {
		return err
	}
	if iglesia == nil {
		return fmt.Errorf("%w: la iglesia no existe", domain.ErrReferenciaNoExiste)
	}
	return nil
}
