package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jstringer1212/plant-review-api/pkg/jwt"
)

const (
	secret = "test-secret-key-for-unit-tests"
	issuer = "plant-review-test"
)

var identity = pkgjwt.Identity{
	UserID:    "00000000-0000-0000-0000-000000000001",
	Email:     "test@example.com",
	Role:      "user",
	FirstName: "Test",
}

// Round-trip básico: lo que se firma es lo que se recupera.
func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identity, issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, identity.UserID, claims.UserID)
	assert.Equal(t, identity.Email, claims.Email)
	assert.Equal(t, identity.Role, claims.Role)
	assert.Equal(t, identity.FirstName, claims.FirstName)
	assert.Equal(t, identity.UserID, claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

// Token con expiración -1 minuto (ya expirado) → error.
func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identity, issuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identity, issuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(secret, "no.es.un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", identity, issuer, 60)
	assert.Error(t, err)
}
