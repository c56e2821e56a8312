package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/usecase"
	"github.com/jhoicas/graha-hub/internal/domain"
)

// PreferenceHandler tema claro/oscuro de la sesión.
type PreferenceHandler struct {
	uc *usecase.PreferenceUseCase
}

// NewPreferenceHandler construye el handler.
func NewPreferenceHandler(uc *usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// GetTheme tema vigente.
// GET /api/preferences/theme
func (h *PreferenceHandler) GetTheme(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(GetSession(c)))
}

// SetTheme godoc
// @Summary      Fijar tema
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThemeRequest  true  "light | dark"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ThemeUnavailableResponse
// @Router       /api/preferences/theme [put]
func (h *PreferenceHandler) SetTheme(c *fiber.Ctx) error {
	var in dto.ThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Set(c.Context(), GetSession(c), in.Theme)
	return h.respond(c, out, err)
}

// ToggleTheme alterna claro/oscuro.
// POST /api/preferences/theme/toggle
func (h *PreferenceHandler) ToggleTheme(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(c.Context(), GetSession(c))
	return h.respond(c, out, err)
}

func (h *PreferenceHandler) respond(c *fiber.Ctx, out dto.ThemeResponse, err error) error {
	if err == nil {
		return c.JSON(out)
	}
	if errors.Is(err, domain.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ThemeUnavailableResponse{
			Code:    "SERVICE_UNAVAILABLE",
			Message: domain.ErrUnavailable.Error(),
			Theme:   out.Theme,
		})
	}
	return respondError(c, err)
}
