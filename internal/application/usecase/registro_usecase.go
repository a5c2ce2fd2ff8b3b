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

// RegistroTxRunner abre una transacción y entrega los repos transaccionales
// al callback. Usuario y perfil se crean juntos o no se crea ninguno.
type RegistroTxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		usuarios repository.UsuarioRepository,
		pastores repository.PastorRepository,
		secretarios repository.SecretarioRepository,
		miembros repository.MiembroRepository,
	) error) error
}

// RegistroUseCase altas de cuentas: SuperADMIN inicial y secretarias.
type RegistroUseCase struct {
	usuarios     repository.UsuarioRepository
	iglesias     repository.IglesiaRepository
	asociaciones repository.AsociacionRepository
	tx           RegistroTxRunner
}

// NewRegistroUseCase construye el caso de uso de registro.
func NewRegistroUseCase(
	usuarios repository.UsuarioRepository,
	iglesias repository.IglesiaRepository,
	asociaciones repository.AsociacionRepository,
	tx RegistroTxRunner,
) *RegistroUseCase {
	return &RegistroUseCase{usuarios: usuarios, iglesias: iglesias, asociaciones: asociaciones, tx: tx}
}

// RegistrarSuperAdmin crea la cuenta SuperADMIN. No enlaza perfil.
func (uc *RegistroUseCase) RegistrarSuperAdmin(ctx context.Context, in dto.RegistroAdminRequest) (*dto.RegistroAdminResponse, error) {
	if err := validarDatosCuenta(in.Nombre, in.Apellidos, in.Email, in.Telefono, in.Password); err != nil {
		return nil, err
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
		Rol:          entity.RolSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return &dto.RegistroAdminResponse{
		Message:   "Administrador registrado exitosamente",
		UsuarioID: usuario.ID,
		Email:     usuario.Email,
	}, nil
}

// RegistrarSecretaria crea una secretaria de iglesia. Requiere IglesiaID
// existente; el rol lo fija el servidor.
func (uc *RegistroUseCase) RegistrarSecretaria(ctx context.Context, in dto.RegistroSecretariaRequest) (*dto.RegistroSecretariaResponse, error) {
	if err := validarDatosCuenta(in.Nombre, in.Apellidos, in.Email, in.Telefono, in.Password); err != nil {
		return nil, err
	}
	if in.IglesiaID == "" {
		return nil, fmt.Errorf("%w: iglesiaId es requerido", domain.ErrValidation)
	}
	iglesia, err := uc.iglesias.GetByID(ctx, in.IglesiaID)
	if err != nil {
		return nil, err
	}
	if iglesia == nil {
		return nil, fmt.Errorf("%w: la iglesia no existe", domain.ErrReferenciaNoExiste)
	}
	return uc.registrarSecretariaTx(ctx, in, entity.RolSecretaria, &in.IglesiaID, nil)
}

// RegistrarSecretariaAsociacion crea una secretaria de asociación. Requiere
// AsociacionID existente.
func (uc *RegistroUseCase) RegistrarSecretariaAsociacion(ctx context.Context, in dto.RegistroSecretariaRequest) (*dto.RegistroSecretariaResponse, error) {
	if err := validarDatosCuenta(in.Nombre, in.Apellidos, in.Email, in.Telefono, in.Password); err != nil {
		return nil, err
	}
	if in.AsociacionID == "" {
		return nil, fmt.Errorf("%w: asociacionId es requerido", domain.ErrValidation)
	}
	asociacion, err := uc.asociaciones.GetByID(ctx, in.AsociacionID)
	if err != nil {
		return nil, err
	}
	if asociacion == nil {
		return nil, fmt.Errorf("%w: la asociación no existe", domain.ErrReferenciaNoExiste)
	}
	return uc.registrarSecretariaTx(ctx, in, entity.RolSecretariaAsociacion, nil, &in.AsociacionID)
}

func (uc *RegistroUseCase) registrarSecretariaTx(ctx context.Context, in dto.RegistroSecretariaRequest, rol string, iglesiaID, asociacionID *string) (*dto.RegistroSecretariaResponse, error) {
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
	secretario := &entity.Secretario{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellidos:    in.Apellidos,
		Email:        auth.NormalizarEmail(in.Email),
		Telefono:     in.Telefono,
		PasswordHash: hash,
		Rol:          rol,
		SecretarioID: &secretario.ID,
		IglesiaID:    iglesiaID,
		AsociacionID: asociacionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunRegistro(ctx, func(
		usuarios repository.UsuarioRepository,
		_ repository.PastorRepository,
		secretarios repository.SecretarioRepository,
		_ repository.MiembroRepository,
	) error {
		if err := secretarios.Create(ctx, secretario); err != nil {
			return err
		}
		return usuarios.Create(ctx, usuario)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegistroSecretariaResponse{
		Message:    "Secretaria registrada exitosamente",
		Secretaria: toUsuarioResponse(usuario),
	}, nil
}

func validarDatosCuenta(nombre, apellidos, email, telefono, password string) error {
	if strings.TrimSpace(nombre) == "" {
		return fmt.Errorf("%w: nombre es requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(apellidos) == "" {
		return fmt.Errorf("%w: apellidos es requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(telefono) == "" {
		return fmt.Errorf("%w: telefono es requerido", domain.ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: el password debe tener al menos 6 caracteres", domain.ErrValidation)
	}
	return nil
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellidos: u.Apellidos,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Rol:       u.Rol,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if ref, err := u.Referencia(); err == nil {
		resp.ReferenciaID = ref.ID
	}
	if u.IglesiaID != nil {
		resp.IglesiaID = *u.IglesiaID
	}
	if u.AsociacionID != nil {
		resp.AsociacionID = *u.AsociacionID
	}
	return resp
}
