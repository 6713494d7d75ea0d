package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/juguetes-api/pkg/logger"
)

// LocalRequestID key de c.Locals con el ID de la petición.
const LocalRequestID = "request_id"

// RequestLogger asigna un X-Request-ID (respeta el del cliente) y registra método, ruta, status y latencia.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(fiber.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(fiber.HeaderXRequestID, reqID)

		err := c.Next()

		status := responseStatus(c, err)
		evt := l.Info()
		if status >= fiber.StatusInternalServerError {
			evt = l.Error()
		}
		evt.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}

// GetRequestID devuelve el ID asignado por RequestLogger, o vacío.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}
