package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

type secretariaFixture struct {
	uc      *usecase.SecretariaUseCase
	eventos *fakeEventoRepo
}

// buildSecretariaFixture monta una secretaria asignada a iglesia-1 (con
// pastor y miembros) y otra sin iglesia asignada.
func buildSecretariaFixture(t *testing.T) *secretariaFixture {
	t.Helper()
	iglesias := newFakeIglesiaRepo()
	pastorID := "pastor-1"
	require.NoError(t, iglesias.Create(context.Background(), &entity.Iglesia{
		ID: "iglesia-1", Codigo: "IGL-001", Nombre: "Central",
		Direccion: "Calle 1", DistritoID: "distrito-1", PastorID: &pastorID,
	}))

	distritos := newFakeDistritoRepo(&entity.Distrito{ID: "distrito-1", Nombre: "Distrito Central", AsociacionID: "asoc-1"})
	asociaciones := newFakeAsociacionRepo(&entity.Asociacion{ID: "asoc-1", Nombre: "Asociación Norte"})

	miembros := newFakeMiembroRepo(iglesias)
	iglesiaID := "iglesia-1"
	miembroID := "miembro-1"
	require.NoError(t, miembros.Create(context.Background(), &entity.Miembro{ID: miembroID, IglesiaID: &iglesiaID}))

	usuarios := newFakeUsuarioRepo()
	secretarioID := "secretario-1"
	require.NoError(t, usuarios.Create(context.Background(), &entity.Usuario{
		ID: "u-secretaria", Nombre: "María", Apellidos: "López", Email: "maria@iglesias.org",
		Rol: entity.RolSecretaria, SecretarioID: &secretarioID, IglesiaID: &iglesiaID,
	}))
	secretarioDos := "secretario-2"
	require.NoError(t, usuarios.Create(context.Background(), &entity.Usuario{
		ID: "u-sin-iglesia", Nombre: "Rosa", Apellidos: "Díaz", Email: "rosa@iglesias.org",
		Rol: entity.RolSecretaria, SecretarioID: &secretarioDos,
	}))
	require.NoError(t, usuarios.Create(context.Background(), &entity.Usuario{
		ID: "u-pastor", Nombre: "Juan", Apellidos: "Pérez", Email: "juan@iglesias.org",
		Telefono: "3010000000", Rol: entity.RolPastor, PastorID: &pastorID,
	}))
	require.NoError(t, usuarios.Create(context.Background(), &entity.Usuario{
		ID: "u-miembro", Nombre: "Ana", Apellidos: "Gómez", Email: "ana@iglesias.org",
		Rol: entity.RolMiembro, MiembroID: &miembroID,
	}))

	eventos := newFakeEventoRepo()
	uc := usecase.NewSecretariaUseCase(usuarios, iglesias, miembros, eventos, distritos, asociaciones)
	return &secretariaFixture{uc: uc, eventos: eventos}
}

func TestSecretariaPerfilIglesia_ResuelveJerarquiaYPastor(t *testing.T) {
	fx := buildSecretariaFixture(t)

	out, err := fx.uc.PerfilIglesia(context.Background(), "u-secretaria")
	require.NoError(t, err)
	assert.Equal(t, "Central", out.Nombre)
	assert.Equal(t, "Distrito Central", out.Distrito)
	assert.Equal(t, "Asociación Norte", out.Asociacion)
	assert.Equal(t, "Juan Pérez", out.PastorNombre)
	assert.Equal(t, "3010000000", out.PastorTelefono)
}

func TestSecretariaSinIglesia_Retorna_SinAsignacion(t *testing.T) {
	fx := buildSecretariaFixture(t)

	_, err := fx.uc.PerfilIglesia(context.Background(), "u-sin-iglesia")
	assert.ErrorIs(t, err, domain.ErrSinAsignacion)

	_, err = fx.uc.Miembros(context.Background(), "u-sin-iglesia")
	assert.ErrorIs(t, err, domain.ErrSinAsignacion)
}

func TestSecretariaMiembros_SoloSuIglesia(t *testing.T) {
	fx := buildSecretariaFixture(t)

	out, err := fx.uc.Miembros(context.Background(), "u-secretaria")
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Ana", out.Data[0].Nombre)
}

func TestSecretariaCrearEvento_OK(t *testing.T) {
	fx := buildSecretariaFixture(t)

	inicio := time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC)
	out, err := fx.uc.CrearEvento(context.Background(), "u-secretaria", dto.CrearEventoRequest{
		Nombre:      "Semana de oración",
		FechaInicio: inicio,
		FechaFin:    inicio.Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "iglesia-1", out.Data.IglesiaID)
	assert.Equal(t, "u-secretaria", out.Data.CreadoPorID)
	assert.Len(t, fx.eventos.porID, 1)
}

func TestSecretariaCrearEvento_FechasInvalidas(t *testing.T) {
	fx := buildSecretariaFixture(t)

	inicio := time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC)
	_, err := fx.uc.CrearEvento(context.Background(), "u-secretaria", dto.CrearEventoRequest{
		Nombre:      "Evento al revés",
		FechaInicio: inicio,
		FechaFin:    inicio.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, fx.eventos.porID)
}
