package entity

import "time"

// Roles conocidos. El conjunto es abierto: la API no restringe rutas por rol.
const (
	RoleAdministrador = "Administrador"
	RoleVendedor      = "Vendedor"
)

// User representa una fila de usuarios (Credential Store).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca el texto plano
	Name         string
	Role         string
	CreatedAt    time.Time
}
