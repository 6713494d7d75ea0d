// Package password hashea y verifica contraseñas con bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost factor de trabajo de bcrypt usado por la API.
const DefaultCost = 10

// ErrTooLong bcrypt solo considera los primeros 72 bytes; rechazamos en vez de truncar.
var ErrTooLong = errors.New("password: supera 72 bytes")

// Hasher aplica bcrypt con un costo fijo. No guarda estado entre llamadas.
type Hasher struct {
	cost int
}

// New construye un Hasher. Un costo fuera del rango de bcrypt se reemplaza por DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost devuelve el factor de trabajo efectivo.
func (h *Hasher) Cost() int { return h.cost }

// Hash devuelve el hash bcrypt (con sal aleatoria embebida) de plain.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify compara plain contra hash en tiempo constante. Un hash malformado cuenta como no coincidente.
func (h *Hasher) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
