package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/graha-hub/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC    *usecase.SessionUseCase
	PreferenceUC *usecase.PreferenceUseCase
	NavigationUC *usecase.NavigationUseCase
	AttendanceUC *usecase.AttendanceUseCase
	JWTSecret    string
	AppName      string
}

// Router registra las rutas de salud y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := deps.PreferenceUC.Ready(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	api := app.Group("/api")
	withSession := SessionMiddleware(deps.JWTSecret, deps.SessionUC)
	requireAuth := RequireAuthenticated()

	// Sesión: abrir y roles son públicos; el resto requiere token
	sessionHandler := NewSessionHandler(deps.SessionUC)
	sessions := api.Group("/session")
	sessions.Post("/", sessionHandler.Open)
	sessions.Get("/roles", sessionHandler.Roles)
	sessions.Get("/", withSession, sessionHandler.Get)
	sessions.Delete("/", withSession, sessionHandler.Close)
	sessions.Post("/login", withSession, sessionHandler.Login)
	sessions.Delete("/login", withSession, sessionHandler.CancelLogin)
	sessions.Post("/logout", withSession, sessionHandler.Logout)

	// Preferencias (sesión, también anónima)
	prefHandler := NewPreferenceHandler(deps.PreferenceUC)
	prefs := api.Group("/preferences", withSession)
	prefs.Get("/theme", prefHandler.GetTheme)
	prefs.Put("/theme", prefHandler.SetTheme)
	prefs.Post("/theme/toggle", prefHandler.ToggleTheme)

	// Navegación (requiere identidad)
	navHandler := NewNavigationHandler(deps.NavigationUC)
	api.Get("/views", withSession, requireAuth, navHandler.Views)
	api.Get("/tab", withSession, requireAuth, navHandler.GetTab)
	api.Put("/tab", withSession, requireAuth, navHandler.SelectTab)
	api.Get("/panel", withSession, requireAuth, navHandler.Panel)

	// Absensi (requiere identidad)
	attHandler := NewAttendanceHandler(deps.AttendanceUC)
	att := api.Group("/attendance", withSession, requireAuth)
	att.Get("/", attHandler.Status)
	att.Post("/check-in", attHandler.CheckIn)
	att.Post("/check-out", attHandler.CheckOut)
	att.Get("/history", attHandler.History)
	att.Get("/history/export", attHandler.Export)
}
