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

	"github.com/RobertArzolaC/arka/internal/application/auth"
	"github.com/RobertArzolaC/arka/internal/application/numbering"
	"github.com/RobertArzolaC/arka/internal/application/usecase"
	"github.com/RobertArzolaC/arka/internal/infrastructure/postgres"
	infrasunat "github.com/RobertArzolaC/arka/internal/infrastructure/sunat"
	httpRouter "github.com/RobertArzolaC/arka/internal/interfaces/http"
	"github.com/RobertArzolaC/arka/pkg/config"
	"github.com/RobertArzolaC/arka/pkg/logger"
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
		Str("sunat_env", cfg.SUNAT.Environment).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	seriesRepo := postgres.NewDocumentSeriesRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	credentialsRepo := postgres.NewCredentialsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner)
	branchUC := usecase.NewBranchUseCase(branchRepo, companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	credentialsUC := usecase.NewCredentialsUseCase(credentialsRepo, companyRepo, infrasunat.NewCertConverter())
	registryUC := numbering.NewRegistryUseCase(branchRepo, seriesRepo, txRunner)
	allocatorUC := numbering.NewAllocatorUseCase(seriesRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Arka API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		BranchUC:      branchUC,
		CredentialsUC: credentialsUC,
		UserUC:        userUC,
		Registry:      registryUC,
		Allocator:     allocatorUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
