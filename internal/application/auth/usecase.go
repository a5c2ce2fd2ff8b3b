package auth

import (
	"context"
	"strings"

	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
	"github.com/tu-usuario/iglesias-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica email/password, resuelve la referencia de perfil según el rol
// y genera el JWT. Un email inexistente y un password incorrecto producen el
// mismo ErrCredenciales para no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarios.GetByEmail(ctx, NormalizarEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}
	ref, err := usuario.Referencia()
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, ref.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message:      "Login exitoso",
		Token:        token,
		Rol:          usuario.Rol,
		ReferenciaID: ref.ID,
	}, nil
}

// HashPassword genera el hash bcrypt de un password en claro.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NormalizarEmail canonicaliza un email para persistencia y búsqueda. El email
// se guarda y se consulta siempre en esta forma; de lo contrario una cuenta
// registrada con mayúsculas nunca podría iniciar sesión.
func NormalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
