package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestReferencia_SuperAdmin_SinPerfil(t *testing.T) {
	u := &entity.Usuario{ID: "u-1", Rol: entity.RolSuperAdmin}
	ref, err := u.Referencia()
	require.NoError(t, err)
	assert.Equal(t, entity.PerfilNinguno, ref.Tipo)
	assert.Empty(t, ref.ID)
}

func TestReferencia_Pastor(t *testing.T) {
	u := &entity.Usuario{ID: "u-1", Rol: entity.RolPastor, PastorID: strPtr("pastor-1")}
	ref, err := u.Referencia()
	require.NoError(t, err)
	assert.Equal(t, entity.PerfilPastor, ref.Tipo)
	assert.Equal(t, "pastor-1", ref.ID)
}

func TestReferencia_SecretariaYAsociacion_CompartenPerfil(t *testing.T) {
	for _, rol := range []string{entity.RolSecretaria, entity.RolSecretariaAsociacion} {
		u := &entity.Usuario{ID: "u-1", Rol: rol, SecretarioID: strPtr("sec-1")}
		ref, err := u.Referencia()
		require.NoError(t, err, rol)
		assert.Equal(t, entity.PerfilSecretario, ref.Tipo)
		assert.Equal(t, "sec-1", ref.ID)
	}
}

func TestReferencia_Miembro(t *testing.T) {
	u := &entity.Usuario{ID: "u-1", Rol: entity.RolMiembro, MiembroID: strPtr("miembro-1")}
	ref, err := u.Referencia()
	require.NoError(t, err)
	assert.Equal(t, entity.PerfilMiembro, ref.Tipo)
	assert.Equal(t, "miembro-1", ref.ID)
}

// La comparación de rol es case-insensitive.
func TestReferencia_RolCaseInsensitive(t *testing.T) {
	u := &entity.Usuario{ID: "u-1", Rol: "pastor", PastorID: strPtr("pastor-1")}
	ref, err := u.Referencia()
	require.NoError(t, err)
	assert.Equal(t, entity.PerfilPastor, ref.Tipo)
}

func TestReferencia_RolSinFKRequerido_Error(t *testing.T) {
	u := &entity.Usuario{ID: "u-1", Rol: entity.RolPastor}
	_, err := u.Referencia()
	assert.Error(t, err)
}

func TestReferencia_MasDeUnFK_Error(t *testing.T) {
	u := &entity.Usuario{
		ID:        "u-1",
		Rol:       entity.RolPastor,
		PastorID:  strPtr("pastor-1"),
		MiembroID: strPtr("miembro-1"),
	}
	_, err := u.Referencia()
	assert.Error(t, err)
}

func TestReferencia_SuperAdminConPerfil_Error(t *testing.T) {
	u := &entity.Usuario{ID: "u-1", Rol: entity.RolSuperAdmin, PastorID: strPtr("pastor-1")}
	_, err := u.Referencia()
	assert.Error(t, err)
}

func TestRolValido(t *testing.T) {
	assert.True(t, entity.RolValido("SuperADMIN"))
	assert.True(t, entity.RolValido("superadmin"))
	assert.True(t, entity.RolValido("PASTOR"))
	assert.True(t, entity.RolValido("secretaria_asociacion"))
	assert.False(t, entity.RolValido("CONSERJE"))
	assert.False(t, entity.RolValido(""))
}
