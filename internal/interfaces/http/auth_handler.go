package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/juguetes-api/internal/application/auth"
	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/domain"
)

// Resultados de login contados en auth_login_total.
const (
	loginOK                 = "ok"
	loginUserNotFound       = "user_not_found"
	loginInvalidCredentials = "invalid_credentials"
	loginError              = "error"
)

// loginObserver cuenta los intentos de login por resultado. Lo implementa *Metrics.
type loginObserver interface {
	ObserveLogin(result string)
}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics loginObserver
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, metrics loginObserver) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: metrics}
}

// Register godoc
// @Summary      Registrar usuario
// @Description  El username viaja en "email". Con AUTH_DUPLICATE_USERNAME=skip un username repetido responde 201 con user null.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, email, password, rol"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "Falta la contraseña en la petición")
	}
	if strings.TrimSpace(in.LoginName()) == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "email es requerido")
	}
	user, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, fiber.StatusBadRequest, "VALIDATION", "contraseña o usuario inválido")
		case errors.Is(err, domain.ErrUsernameTaken):
			return fail(c, fiber.StatusConflict, "USERNAME_TAKEN", "el usuario ya está registrado")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{Success: true, User: user})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.Envelope[dto.LoginResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "username y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.observe(loginUserNotFound)
			return fail(c, fiber.StatusBadRequest, "USER_NOT_FOUND", "Usuario no encontrado")
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.observe(loginInvalidCredentials)
			return fail(c, fiber.StatusBadRequest, "INVALID_CREDENTIALS", "Contraseña incorrecta")
		}
		h.observe(loginError)
		return internalError(c, err)
	}
	h.observe(loginOK)
	return c.JSON(dto.OK(out))
}

// Me godoc
// @Summary      Claims de la sesión actual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope[dto.ClaimsResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Acceso denegado. No se proporcionó un token.")
	}
	out := dto.ClaimsResponse{ID: claims.ID, Rol: claims.Rol}
	if claims.ExpiresAt != nil {
		out.Exp = claims.ExpiresAt.Unix()
	}
	return c.JSON(dto.OK(out))
}

func (h *AuthHandler) observe(result string) {
	if h.metrics != nil {
		h.metrics.ObserveLogin(result)
	}
}
