package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/juguetes-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "juguetes-api-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "Vendedor", testIssuer, pkgjwt.DefaultTTL)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "Vendedor", claims.Rol)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "Administrador", testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "Administrador", testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

// Alterar un solo byte (en header, payload o firma) invalida el token.
func TestParse_TokenAlterado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "Vendedor", testIssuer, time.Hour)
	require.NoError(t, err)

	positions := []int{0, strings.Index(tok, ".") + 3, len(tok) - 2}
	for _, pos := range positions {
		b := []byte(tok)
		if b[pos] == 'A' {
			b[pos] = 'B'
		} else {
			b[pos] = 'A'
		}
		_, err := pkgjwt.Parse(testSecret, string(b))
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "byte %d alterado debe invalidar el token", pos)
	}
}

func TestParse_Malformado(t *testing.T) {
	for _, tok := range []string{"", "abc", "token.invalido.aqui", "a.b"} {
		_, err := pkgjwt.Parse(testSecret, tok)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "token %q", tok)
	}
}

func TestParse_AlgoritmoNoneRechazado(t *testing.T) {
	claims := pkgjwt.Claims{
		ID:  1,
		Rol: "Administrador",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestParse_SinExpiracionRechazado(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, pkgjwt.Claims{ID: 1, Rol: "Vendedor"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "Vendedor", testIssuer, time.Hour)
	assert.Error(t, err)
}
