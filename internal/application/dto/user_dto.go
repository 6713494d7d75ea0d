package dto

// RegisterRequest entrada de /api/auth/register. El username viaja en "email" (contrato del
// frontend); "username" se acepta como alternativa.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// LoginName devuelve el username efectivo del registro.
func (r RegisterRequest) LoginName() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// UserResponse vista pública de un usuario recién registrado (sin password).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

// RegisterResponse salida del registro. User es null cuando el username ya existía y la
// política configurada es "skip".
type RegisterResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
}

// LoginRequest entrada de /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser vista mínima del usuario autenticado.
type SessionUser struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token   string      `json:"token"`
	Usuario SessionUser `json:"usuario"`
}

// ClaimsResponse claims decodificados del token (GET /api/auth/me).
type ClaimsResponse struct {
	ID  int64  `json:"id"`
	Rol string `json:"rol"`
	Exp int64  `json:"exp"`
}
