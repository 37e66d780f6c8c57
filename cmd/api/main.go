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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/contratos-api/internal/application/auth"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
	"github.com/tu-usuario/contratos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/contratos-api/internal/interfaces/http"
	"github.com/tu-usuario/contratos-api/pkg/config"
	"github.com/tu-usuario/contratos-api/pkg/logger"
	"github.com/tu-usuario/contratos-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    "info",
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	entidadRepo := postgres.NewEntidadRepository(pool)
	tipoRepo := postgres.NewTipoContratoRepository(pool)
	contratoRepo := postgres.NewContratoRepository(pool)
	ofertaRepo := postgres.NewOfertaRepository(pool)
	descRepo := postgres.NewOfertaDescripcionRepository(pool)
	trabajadorRepo := postgres.NewTrabajadorRepository(pool)
	asignacionRepo := postgres.NewContratoTrabajadorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	entidadUC := usecase.NewEntidadUseCase(entidadRepo, contratoRepo)
	tipoUC := usecase.NewTipoContratoUseCase(tipoRepo, contratoRepo)
	contratoUC := usecase.NewContratoUseCase(
		contratoRepo, entidadRepo, tipoRepo,
		ofertaRepo, descRepo, asignacionRepo, trabajadorRepo,
		txRunner,
	)
	ofertaUC := usecase.NewOfertaUseCase(ofertaRepo, descRepo, contratoRepo, usuarioRepo, txRunner)
	trabajadorUC := usecase.NewTrabajadorUseCase(trabajadorRepo, asignacionRepo, contratoRepo, txRunner)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, ofertaRepo, descRepo)
	authUC := auth.NewUseCase(usuarioRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log))

	metrics.Init()
	app.Use(metrics.Middleware())
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contratos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EntidadUC:      entidadUC,
		TipoContratoUC: tipoUC,
		ContratoUC:     contratoUC,
		OfertaUC:       ofertaUC,
		TrabajadorUC:   trabajadorUC,
		UsuarioUC:      usuarioUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
