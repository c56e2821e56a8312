package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// Se evalúan en orden; gana la primera coincidencia.
var errorMappings = []errorMapping{
	{domain.ErrRoleNotSelected, fiber.StatusBadRequest, "ROLE_NOT_SELECTED"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrLoginInProgress, fiber.StatusConflict, "LOGIN_IN_PROGRESS"},
	{domain.ErrLoginCancelled, fiber.StatusConflict, "LOGIN_CANCELLED"},
	{domain.ErrAlreadyLoggedIn, fiber.StatusConflict, "ALREADY_LOGGED_IN"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHENTICATED"},
	{domain.ErrSessionNotFound, fiber.StatusUnauthorized, "SESSION_NOT_FOUND"},
	{domain.ErrInvalidView, fiber.StatusBadRequest, "INVALID_VIEW"},
	{domain.ErrInvalidTheme, fiber.StatusBadRequest, "INVALID_THEME"},
	{domain.ErrAlreadyCheckedIn, fiber.StatusConflict, "ALREADY_CHECKED_IN"},
	{domain.ErrNotCheckedIn, fiber.StatusConflict, "NOT_CHECKED_IN"},
	{domain.ErrAlreadyCheckedOut, fiber.StatusConflict, "ALREADY_CHECKED_OUT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUnavailable, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
}

// respondError traduce un error de dominio a dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if m.status == fiber.StatusServiceUnavailable {
				msg = domain.ErrUnavailable.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
