package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/usecase"
)

// AttendanceHandler maneja los endpoints de Absensi.
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Status godoc
// @Summary      Estado de asistencia del día
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckIn godoc
// @Summary      Registrar entrada
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckOut registra la salida. Requiere entrada previa en el día.
// POST /api/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History historial visible para la identidad de la sesión.
// GET /api/attendance/history
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar historial
// @Tags         attendance
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  query  string  false  "pdf | xlsx (por defecto pdf)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/attendance/history/export [get]
func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.Context(), GetSession(c), c.Query("format", "pdf"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Content)
}
