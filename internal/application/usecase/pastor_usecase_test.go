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

type fakeCertificadoGen struct {
	llamadas int
}

func (f *fakeCertificadoGen) GenerarCertificado(usecase.CertificadoBautismo) ([]byte, error) {
	f.llamadas++
	return []byte("%PDF-1.4 fake"), nil
}

type pastorFixture struct {
	uc        *usecase.PastorUseCase
	usuarios  *fakeUsuarioRepo
	iglesias  *fakeIglesiaRepo
	miembros  *fakeMiembroRepo
	bautismos *fakeBautismoRepo
	certGen   *fakeCertificadoGen
}

// buildPastorFixture monta un pastor con distrito, una iglesia en su distrito
// con un miembro, y una iglesia de otro distrito con otro miembro.
func buildPastorFixture(t *testing.T) *pastorFixture {
	t.Helper()
	distritoID := "distrito-1"
	otroDistritoID := "distrito-2"

	pastores := newFakePastorRepo(
		&entity.Pastor{ID: "pastor-1", DistritoID: &distritoID},
		&entity.Pastor{ID: "pastor-sin-distrito"},
	)
	distritos := newFakeDistritoRepo(
		&entity.Distrito{ID: distritoID, Nombre: "Distrito Central", AsociacionID: "asoc-1"},
	)
	asociaciones := newFakeAsociacionRepo(&entity.Asociacion{ID: "asoc-1", Nombre: "Asociación Norte"})

	iglesias := newFakeIglesiaRepo()
	require.NoError(t, iglesias.Create(context.Background(), &entity.Iglesia{
		ID: "iglesia-1", Codigo: "IGL-001", Nombre: "Central", DistritoID: distritoID,
	}))
	require.NoError(t, iglesias.Create(context.Background(), &entity.Iglesia{
		ID: "iglesia-2", Codigo: "IGL-002", Nombre: "Lejana", DistritoID: otroDistritoID,
	}))

	miembros := newFakeMiembroRepo(iglesias)
	iglesiaUno := "iglesia-1"
	iglesiaDos := "iglesia-2"
	require.NoError(t, miembros.Create(context.Background(), &entity.Miembro{ID: "miembro-1", IglesiaID: &iglesiaUno}))
	require.NoError(t, miembros.Create(context.Background(), &entity.Miembro{ID: "miembro-ajeno", IglesiaID: &iglesiaDos}))

	usuarios := newFakeUsuarioRepo()
	pastorID := "pastor-1"
	miembroID := "miembro-1"
	require.NoError(t, usuarios.Create(context.Background(), &entity.Usuario{
		ID: "u-pastor", Nombre: "Juan", Apellidos: "Pérez", Email: "juan@iglesia.org",
		Rol: entity.RolPastor, PastorID: &pastorID,
	}))
	require.NoError(t, usuarios.Create(context.Background(), &entity.Usuario{
		ID: "u-miembro", Nombre: "Ana", Apellidos: "Gómez", Email: "ana@iglesia.org",
		Rol: entity.RolMiembro, MiembroID: &miembroID,
	}))

	bautismos := newFakeBautismoRepo()
	certGen := &fakeCertificadoGen{}
	uc := usecase.NewPastorUseCase(
		pastores, usuarios, iglesias, miembros, bautismos, distritos, asociaciones, certGen,
	)
	return &pastorFixture{uc: uc, usuarios: usuarios, iglesias: iglesias, miembros: miembros, bautismos: bautismos, certGen: certGen}
}

func TestPastorPerfil_ResuelveDistritoYAsociacion(t *testing.T) {
	fx := buildPastorFixture(t)

	out, err := fx.uc.Perfil(context.Background(), "pastor-1")
	require.NoError(t, err)
	assert.Equal(t, "Juan", out.Nombre)
	assert.Equal(t, "Distrito Central", out.Distrito)
	assert.Equal(t, "Asociación Norte", out.Asociacion)
}

func TestPastorPerfil_NoExiste_Retorna_NotFound(t *testing.T) {
	fx := buildPastorFixture(t)

	_, err := fx.uc.Perfil(context.Background(), "pastor-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El alcance del pastor es su distrito: solo ve las iglesias y miembros de él.
func TestPastorIglesias_SoloSuDistrito(t *testing.T) {
	fx := buildPastorFixture(t)

	out, err := fx.uc.Iglesias(context.Background(), "pastor-1")
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "iglesia-1", out.Data[0].ID)
}

func TestPastorMiembros_SoloSuDistrito(t *testing.T) {
	fx := buildPastorFixture(t)

	out, err := fx.uc.Miembros(context.Background(), "pastor-1")
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "miembro-1", out.Data[0].ID)
	assert.Equal(t, "Ana", out.Data[0].Nombre, "debe resolver los datos del usuario")
}

func TestPastorSinDistrito_Retorna_SinAsignacion(t *testing.T) {
	fx := buildPastorFixture(t)

	_, err := fx.uc.Iglesias(context.Background(), "pastor-sin-distrito")
	assert.ErrorIs(t, err, domain.ErrSinAsignacion)

	_, err = fx.uc.Miembros(context.Background(), "pastor-sin-distrito")
	assert.ErrorIs(t, err, domain.ErrSinAsignacion)
}

func TestRegistrarBautismo_OK(t *testing.T) {
	fx := buildPastorFixture(t)

	out, err := fx.uc.RegistrarBautismo(context.Background(), "pastor-1", dto.RegistrarBautismoRequest{
		MiembroID: "miembro-1",
		Fecha:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "pastor-1", out.Data.PastorID)
	assert.Equal(t, "Ana Gómez", out.Data.NombreMiembro)
	assert.Len(t, fx.bautismos.porID, 1)
}

// Miembro de otro distrito: el pastor no puede registrar su bautismo.
func TestRegistrarBautismo_MiembroDeOtroDistrito_Retorna_Forbidden(t *testing.T) {
	fx := buildPastorFixture(t)

	_, err := fx.uc.RegistrarBautismo(context.Background(), "pastor-1", dto.RegistrarBautismoRequest{
		MiembroID: "miembro-ajeno",
		Fecha:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, fx.bautismos.porID)
}

func TestRegistrarBautismo_MiembroInexistente(t *testing.T) {
	fx := buildPastorFixture(t)

	_, err := fx.uc.RegistrarBautismo(context.Background(), "pastor-1", dto.RegistrarBautismoRequest{
		MiembroID: "no-existe",
		Fecha:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrReferenciaNoExiste)
}

func TestCertificadoPDF_DePropioBautismo_OK(t *testing.T) {
	fx := buildPastorFixture(t)

	out, err := fx.uc.RegistrarBautismo(context.Background(), "pastor-1", dto.RegistrarBautismoRequest{
		MiembroID: "miembro-1",
		Fecha:     time.Now(),
	})
	require.NoError(t, err)

	pdfBytes, err := fx.uc.CertificadoPDF(context.Background(), "pastor-1", out.Data.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, 1, fx.certGen.llamadas)
}

// Un pastor no puede emitir el certificado de un bautismo ajeno.
func TestCertificadoPDF_BautismoAjeno_Retorna_Forbidden(t *testing.T) {
	fx := buildPastorFixture(t)

	require.NoError(t, fx.bautismos.Create(context.Background(), &entity.Bautismo{
		ID: "bautismo-ajeno", MiembroID: "miembro-1", PastorID: "otro-pastor", Fecha: time.Now(),
	}))

	_, err := fx.uc.CertificadoPDF(context.Background(), "pastor-1", "bautismo-ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, fx.certGen.llamadas)
}

func TestCertificadoPDF_BautismoInexistente_Retorna_NotFound(t *testing.T) {
	fx := buildPastorFixture(t)

	_, err := fx.uc.CertificadoPDF(context.Background(), "pastor-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
