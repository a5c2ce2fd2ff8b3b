package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/iglesias-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testRefID  = "00000000-0000-0000-0000-000000000002"
	testIssuer = "iglesias-api-test"
	testExp    = 60
)

func TestJWT_GenerateAndParse_ConRolYReferencia(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "PASTOR", testRefID, testIssuer, testExp)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, rol, referenciaID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "PASTOR", rol)
	assert.Equal(t, testRefID, referenciaID)
}

// SuperADMIN no enlaza perfil: referencia vacía viaja y vuelve vacía.
func TestJWT_ReferenciaVacia(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "SuperADMIN", "", testIssuer, testExp)
	require.NoError(t, err)

	_, rol, referenciaID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "SuperADMIN", rol)
	assert.Empty(t, referenciaID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, "PASTOR", testRefID, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "PASTOR", testRefID, testIssuer, testExp)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "PASTOR", testRefID, testIssuer, testExp)
	assert.Error(t, err)

	_, _, _, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}
