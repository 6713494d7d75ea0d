package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vigencia de un token de sesión.
const DefaultTTL = 8 * time.Hour

// ErrInvalidToken cubre cualquier token que no deba admitirse: malformado, firma incorrecta o expirado.
var ErrInvalidToken = errors.New("jwt: token inválido o expirado")

// Claims payload del token de sesión: {id, rol, exp}. iat e iss van en RegisteredClaims.
type Claims struct {
	ID  int64  `json:"id"`
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

// Generate firma con HS256 un token para el usuario id con el rol indicado, válido durante ttl.
// issuer es opcional.
func Generate(secret string, id int64, rol, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		ID:  id,
		Rol: rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims tal cual fueron emitidos.
// Todo fallo se reporta envuelto en ErrInvalidToken.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: secret vacío", ErrInvalidToken)
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidos", ErrInvalidToken)
	}
	return claims, nil
}
