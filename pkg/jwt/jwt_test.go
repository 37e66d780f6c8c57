package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/contratos-api/pkg/jwt"
)

const secreto = "secreto-de-prueba"

func TestGenerateParse_Roundtrip(t *testing.T) {
	token, err := jwt.Generate(secreto, 7, "Ana Pérez", "aperez", "admin", "contratos-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(secreto, token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.IDUsuario)
	assert.Equal(t, "Ana Pérez", claims.Nombre)
	assert.Equal(t, "aperez", claims.NombreUsuario)
	assert.Equal(t, "admin", claims.Rol)
	assert.Equal(t, "contratos-api", claims.Issuer)
	assert.Equal(t, "7", claims.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secreto, 1, "n", "nu", "consultor", "contratos-api", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secreto, 1, "n", "nu", "consultor", "contratos-api", -5)
	require.NoError(t, err)

	_, err = jwt.Parse(secreto, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 1, "n", "nu", "consultor", "contratos-api", 60)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, err := jwt.Parse(secreto, "no.es.un.token")
	assert.Error(t, err)
}
