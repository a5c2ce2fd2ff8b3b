package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/iglesias-api/internal/application/auth"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/iglesias-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fake mínimo del puerto de usuarios para el login.
type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	f.porEmail[u.Email] = u
	return nil
}
func (f *fakeUsuarioRepo) GetByID(_ context.Context, _ string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	return f.porEmail[email], nil
}
func (f *fakeUsuarioRepo) GetByPastorID(_ context.Context, _ string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) GetByMiembroID(_ context.Context, _ string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarioRepo) CountByRol(_ context.Context) (map[string]int, error) {
	return nil, nil
}

func buildAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUsuarioRepo) {
	t.Helper()
	repo := &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "iglesias-api-test",
	})
	return uc, repo
}

func seedPastor(t *testing.T, repo *fakeUsuarioRepo, password string) *entity.Usuario {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	pastorID := "pastor-1"
	u := &entity.Usuario{
		ID:           "u-1",
		Email:        "juan@iglesias.org",
		PasswordHash: hash,
		Rol:          entity.RolPastor,
		PastorID:     &pastorID,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin_OK_TokenDecodificable(t *testing.T) {
	uc, repo := buildAuthUC(t)
	seedPastor(t, repo, "secreto123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "juan@iglesias.org",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", out.Message)
	assert.Equal(t, entity.RolPastor, out.Rol)
	assert.Equal(t, "pastor-1", out.ReferenciaID)

	// El token debe decodificar al mismo usuario, rol y referencia.
	userID, rol, referenciaID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, entity.RolPastor, rol)
	assert.Equal(t, "pastor-1", referenciaID)
}

// El email se persiste normalizado en el registro; el login debe aceptar el
// mismo email escrito con mayúsculas o espacios alrededor.
func TestLogin_EmailConMayusculas_OK(t *testing.T) {
	uc, repo := buildAuthUC(t)
	hash, err := auth.HashPassword("secreto123")
	require.NoError(t, err)
	pastorID := "pastor-2"
	require.NoError(t, repo.Create(context.Background(), &entity.Usuario{
		ID:           "u-2",
		Email:        auth.NormalizarEmail("Ana.Perez@Example.com"),
		PasswordHash: hash,
		Rol:          entity.RolPastor,
		PastorID:     &pastorID,
	}))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Ana.Perez@Example.com ",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "pastor-2", out.ReferenciaID)
}

func TestNormalizarEmail(t *testing.T) {
	assert.Equal(t, "ana.perez@example.com", auth.NormalizarEmail(" Ana.Perez@Example.COM "))
	assert.Equal(t, "", auth.NormalizarEmail("   "))
}

// Email inexistente y password incorrecto producen el mismo error genérico.
func TestLogin_EmailInexistente_Retorna_Credenciales(t *testing.T) {
	uc, _ := buildAuthUC(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@iglesias.org",
		Password: "cualquiera",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	assert.Nil(t, out)
}

func TestLogin_PasswordIncorrecto_Retorna_Credenciales(t *testing.T) {
	uc, repo := buildAuthUC(t)
	seedPastor(t, repo, "secreto123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "juan@iglesias.org",
		Password: "incorrecto",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	assert.Nil(t, out)
}

// Cuenta inconsistente (rol PASTOR sin pastor_id) no debe emitir token.
func TestLogin_ReferenciaInconsistente_Falla(t *testing.T) {
	uc, repo := buildAuthUC(t)
	hash, err := auth.HashPassword("secreto123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.Usuario{
		ID:           "u-roto",
		Email:        "roto@iglesias.org",
		PasswordHash: hash,
		Rol:          entity.RolPastor, // sin PastorID
	}))

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "roto@iglesias.org",
		Password: "secreto123",
	})
	assert.Error(t, err)
}
