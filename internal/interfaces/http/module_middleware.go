package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/domain"
)

// RequireAuthenticated corta la petición si la sesión no tiene identidad.
// Debe usarse DESPUÉS de SessionMiddleware.
//
// Comportamiento:
//   - 401 UNAUTHENTICATED → sesión anónima, cargando o con login fallido.
//   - 401 SESSION_NOT_FOUND → no hay sesión en el contexto.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_NOT_FOUND",
				Message: domain.ErrSessionNotFound.Error(),
			})
		}
		if s.User() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: domain.ErrUnauthorized.Error(),
			})
		}
		return c.Next()
	}
}
