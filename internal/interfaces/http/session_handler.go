package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/usecase"
)

// SessionHandler maneja apertura, login simulado, logout y cierre de sesión.
type SessionHandler struct {
	uc *usecase.SessionUseCase
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir sesión anónima
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  false  "device_id opcional"
// @Success      201   {object}  dto.SessionResponse
// @Router       /api/session [post]
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.Open(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.State(GetSession(c)))
}

// Login godoc
// @Summary      Login simulado
// @Description  Con wait=false responde 202 con el estado "cargando"; el resultado se consulta con GET /api/session.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        wait  query  bool             false  "esperar el resultado (por defecto true)"
// @Param        body  body   dto.LoginRequest  true   "username, password, role"
// @Success      200   {object}  dto.SessionResponse
// @Success      202   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	wait := c.QueryBool("wait", true)
	out, err := h.uc.Login(c.UserContext(), GetSession(c), in, wait)
	if err != nil {
		return respondError(c, err)
	}
	if !wait {
		return c.Status(fiber.StatusAccepted).JSON(out)
	}
	return c.JSON(out)
}

// CancelLogin descarta el intento de login en curso.
// DELETE /api/session/login
func (h *SessionHandler) CancelLogin(c *fiber.Ctx) error {
	return c.JSON(h.uc.CancelLogin(GetSession(c)))
}

// Logout godoc
// @Summary      Cerrar la identidad de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	out, err := h.uc.Logout(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Close descarta la sesión completa.
// DELETE /api/session
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(GetSession(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Roles opciones del selector de rol del formulario de login.
// GET /api/session/roles
func (h *SessionHandler) Roles(c *fiber.Ctx) error {
	return c.JSON(h.uc.Roles())
}
