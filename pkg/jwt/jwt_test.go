package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Documental-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "documental-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "member", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

// La vida útil es fija: un token de 60 minutos debe expirar a T+1h, ni antes
// ni después.
func TestJWT_ExpiracionFijaDeUnaHora(t *testing.T) {
	before := time.Now()
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "member", testIssuer, 60)
	require.NoError(t, err)
	after := time.Now()

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	exp := claims.ExpiresAt.Time
	assert.False(t, exp.Before(before.Add(time.Hour).Truncate(time.Second)),
		"la expiración no puede caer antes de T+1h")
	assert.False(t, exp.After(after.Add(time.Hour).Add(time.Second)),
		"la expiración no puede caer después de T+1h")
}

func TestJWT_TokenExpirado_RetornaErrTokenExpired(t *testing.T) {
	// Expiración -1 minuto: ya vencido al parsear.
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "member", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestJWT_SecretIncorrecto_RetornaErrTokenInvalid(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "member", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestJWT_TokenMalformado_RetornaErrTokenInvalid(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestJWT_SecretVacio_FallaGenerateYParse(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testCompanyID, "member", testIssuer, 60)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
