package jwt_test

import (
	"strings"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pos-ferreteria-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "a@b.com"
	testIssuer = "pos-ferreteria-test"
	testExpMin = 60 * 24
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testUserID, claims.Subject)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	require.Error(t, err, "token expirado debe retornar error")
	assert.ErrorIs(t, err, jwtlib.ErrTokenExpired)
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	for _, tok := range []string{
		"",
		"solo-un-segmento",
		"dos.segmentos",
		"cuatro.seg.men.tos",
	} {
		_, err := pkgjwt.Parse(testSecret, tok)
		assert.Error(t, err, "token %q debe rechazarse como malformado", tok)
	}
}

func TestParse_FirmaAlterada_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Cambiar un carácter de la firma invalida el token completo
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = pkgjwt.Parse(testSecret, tampered)
	assert.Error(t, err, "firma alterada debe invalidar el token")
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testEmail, "admin", testIssuer, testExpMin)
	assert.Error(t, err)
}
