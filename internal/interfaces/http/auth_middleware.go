package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/juguetes-api/pkg/jwt"
)

// LocalClaims key de c.Locals con los claims del token verificado.
const LocalClaims = "usuario"

// AuthMiddleware valida el Bearer Token JWT. Dos salidas terminales:
//   - 401 MISSING_TOKEN: no hay credencial "Bearer <token>".
//   - 403 INVALID_TOKEN: la credencial existe pero la firma no verifica o expiró.
//
// Si el token es válido, los claims quedan en c.Locals(LocalClaims) sin consultar la base.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Acceso denegado. No se proporcionó un token.")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusForbidden, "INVALID_TOKEN", "Token no válido o expirado.")
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// bearerToken extrae <token> de "Bearer <token>" (esquema sin distinguir mayúsculas).
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetClaims devuelve los claims del token (después del middleware de auth), o nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

// GetUserID devuelve el ID de usuario del token; 0 si no hay claims.
func GetUserID(c *fiber.Ctx) int64 {
	if claims := GetClaims(c); claims != nil {
		return claims.ID
	}
	return 0
}

// GetRole devuelve el rol del token; vacío si no hay claims.
func GetRole(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Rol
	}
	return ""
}
