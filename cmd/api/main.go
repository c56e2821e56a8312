package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/graha-hub/docs"
	"github.com/jhoicas/graha-hub/internal/application/auth"
	"github.com/jhoicas/graha-hub/internal/application/panel"
	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/application/usecase"
	"github.com/jhoicas/graha-hub/internal/infrastructure/memory"
	"github.com/jhoicas/graha-hub/internal/infrastructure/messaging"
	"github.com/jhoicas/graha-hub/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/graha-hub/internal/infrastructure/pdf"
	"github.com/jhoicas/graha-hub/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/graha-hub/internal/infrastructure/redis"
	infraxlsx "github.com/jhoicas/graha-hub/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/graha-hub/internal/interfaces/http"
	"github.com/jhoicas/graha-hub/pkg/breaker"
	"github.com/jhoicas/graha-hub/pkg/config"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("preference_store", cfg.Preference.Store).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	loc, err := time.LoadLocation(cfg.Session.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Session.Timezone).Msg("zona horaria no disponible; se usa WIB fija (UTC+7)")
		loc = time.FixedZone("WIB", 7*3600)
	}

	// Preferencias: postgres | redis | memory
	var store ports.PreferenceStore
	switch cfg.Preference.Store {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewPreferenceRepository(pool, breaker.New(breaker.Postgres, log))
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear tabla de preferencias")
		}
		store = repo
	case "redis":
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		store = infraredis.NewPreferenceStore(client, breaker.New(breaker.Redis, log))
	default:
		store = memory.NewPreferenceStore()
	}

	// Eventos de asistencia: RabbitMQ si hay AMQP_URL, si no solo log
	var publisher ports.AttendanceEventPublisher = messaging.NewLogPublisher(log.Component("events"))
	if cfg.AMQP.URL != "" {
		rmq, err := messaging.NewRabbitMQBroker(cfg.AMQP.URL, cfg.AMQP.Queue, log.Component("events"))
		if err != nil {
			log.Error().Err(err).Msg("RabbitMQ no disponible; los eventos solo se registran en el log")
		} else {
			publisher = rmq
		}
	}
	defer publisher.Close()

	prom := metrics.NewPrometheus()

	registry := session.NewRegistry(session.Options{
		Login:        auth.Config{Delay: time.Duration(cfg.Session.LoginDelayMS) * time.Millisecond},
		Location:     loc,
		TickInterval: time.Duration(cfg.Session.TickMS) * time.Millisecond,
	}, time.Duration(cfg.Session.IdleMinutes)*time.Minute, prom, log.Component("session"))

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go registry.Run(janitorCtx, time.Minute)

	prefUC := usecase.NewPreferenceUseCase(store, log.Component("preferences"))
	sessionUC := usecase.NewSessionUseCase(registry, prefUC, usecase.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, prom, log.Component("session"))
	navigationUC := usecase.NewNavigationUseCase(panel.NewBuilder())
	attendanceUC := usecase.NewAttendanceUseCase(publisher, prom, log.Component("attendance"),
		infrapdf.NewHistoryExporter(), infraxlsx.NewHistoryExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http"), prom))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FilePath:    "./docs/swagger.json",
			FileContent: docs.SwaggerJSON,
			Path:        "docs",
			Title:       "Graha Hub API",
		}))
	}

	app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:    sessionUC,
		PreferenceUC: prefUC,
		NavigationUC: navigationUC,
		AttendanceUC: attendanceUC,
		JWTSecret:    cfg.JWT.Secret,
		AppName:      cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	stopJanitor()
	registry.CloseAll()

	log.Info().Msg("aplicación detenida")
}
