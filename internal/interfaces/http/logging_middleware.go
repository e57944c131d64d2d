package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/pkg/logger"
)

// RequestLogger middleware de acceso: método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")

		return err
	}
}
