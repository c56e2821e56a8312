package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/usecase"
)

// NavigationHandler menú lateral, pestaña activa y panel.
type NavigationHandler struct {
	uc *usecase.NavigationUseCase
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(uc *usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{uc: uc}
}

// Views godoc
// @Summary      Vistas autorizadas del rol
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  dto.ViewsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/views [get]
func (h *NavigationHandler) Views(c *fiber.Ctx) error {
	out, err := h.uc.Views(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTab pestaña activa ya corregida por la guarda de rol.
// GET /api/tab
func (h *NavigationHandler) GetTab(c *fiber.Ctx) error {
	out, err := h.uc.Tab(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SelectTab godoc
// @Summary      Seleccionar pestaña
// @Description  Una vista no autorizada para el rol redirige a Ringkasan (redirected=true).
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectTabRequest  true  "id de vista"
// @Success      200   {object}  dto.TabResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tab [put]
func (h *NavigationHandler) SelectTab(c *fiber.Ctx) error {
	var in dto.SelectTabRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SelectTab(GetSession(c), in.View)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Panel contenido principal de la pestaña activa.
// GET /api/panel
func (h *NavigationHandler) Panel(c *fiber.Ctx) error {
	out, err := h.uc.Panel(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
