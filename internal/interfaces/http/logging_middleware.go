package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/contratos-api/pkg/logger"
)

// LocalRequestID key del identificador de correlación en c.Locals.
const LocalRequestID = "request_id"

// LoggingMiddleware registra cada petición con un id de correlación. Si el
// cliente manda X-Request-ID se respeta; si no, se genera un UUID.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
