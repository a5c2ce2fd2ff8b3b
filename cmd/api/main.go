package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/iglesias-api/internal/application/auth"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/iglesias-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/iglesias-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/iglesias-api/internal/interfaces/http"
	"github.com/tu-usuario/iglesias-api/pkg/config"
	"github.com/tu-usuario/iglesias-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	iglesiaRepo := postgres.NewIglesiaRepository(pool)
	distritoRepo := postgres.NewDistritoRepository(pool)
	asociacionRepo := postgres.NewAsociacionRepository(pool)
	pastorRepo := postgres.NewPastorRepository(pool)
	miembroRepo := postgres.NewMiembroRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	bautismoRepo := postgres.NewBautismoRepository(pool)
	peticionRepo := postgres.NewPeticionOracionRepository(pool)
	citaRepo := postgres.NewCitaVisitaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: certificado de bautismo
	certificadoGen := infrapdf.NewMarotoCertificadoGenerator()

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registroUC := usecase.NewRegistroUseCase(usuarioRepo, iglesiaRepo, asociacionRepo, txRunner)
	iglesiaUC := usecase.NewIglesiaUseCase(iglesiaRepo, distritoRepo, pastorRepo)
	pastorUC := usecase.NewPastorUseCase(
		pastorRepo, usuarioRepo, iglesiaRepo, miembroRepo, bautismoRepo,
		distritoRepo, asociacionRepo, certificadoGen,
	)
	secretariaUC := usecase.NewSecretariaUseCase(
		usuarioRepo, iglesiaRepo, miembroRepo, eventoRepo, distritoRepo, asociacionRepo,
	)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, iglesiaRepo, distritoRepo, asociacionRepo, txRunner)
	miembroUC := usecase.NewMiembroUseCase(miembroRepo, peticionRepo, citaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Iglesias API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RegistroUC:   registroUC,
		IglesiaUC:    iglesiaUC,
		PastorUC:     pastorUC,
		SecretariaUC: secretariaUC,
		UsuarioUC:    usuarioUC,
		MiembroUC:    miembroUC,
		JWTSecret:    cfg.JWT.Secret,
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
