package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/pkg/logger"
)

// requestRecorder métrica de peticiones servidas. Lo implementa *metrics.Prometheus.
type requestRecorder interface {
	RequestServed(method, route, code string)
}

// RequestLogger registra cada petición con zerolog y la cuenta en métricas.
// log y rec pueden ser nil.
func RequestLogger(log *logger.Logger, rec requestRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler fije el status antes de registrar
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		route := c.Route().Path
		if rec != nil {
			rec.RequestServed(c.Method(), route, strconv.Itoa(status))
		}
		if log != nil {
			ev := log.Info()
			if status >= fiber.StatusInternalServerError {
				ev = log.Error()
			}
			ev.Str("method", c.Method()).
				Str("path", c.Path()).
				Str("route", route).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("petición HTTP")
		}
		return nil
	}
}
