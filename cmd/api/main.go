package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Documental-api/internal/application/auth"
	"github.com/jhoicas/Documental-api/internal/application/document"
	"github.com/jhoicas/Documental-api/internal/application/usecase"
	"github.com/jhoicas/Documental-api/internal/infrastructure/objectstore"
	"github.com/jhoicas/Documental-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Documental-api/internal/interfaces/http"
	"github.com/jhoicas/Documental-api/pkg/config"
	"github.com/jhoicas/Documental-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	// Precondición dura: sin secret de firma no hay manera segura de operar.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET no está definido; el servicio no puede arrancar")
	}

	if err := postgres.MigrateUp(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	blobStore, err := objectstore.NewMinioStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al object storage")
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	diagnosticsRepo := postgres.NewDiagnosticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	documentUC := document.NewDocumentUseCase(documentRepo, productionRepo, blobStore, log)
	productionUC := usecase.NewProductionUseCase(productionRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // descargas grandes en streaming
		IdleTimeout:  time.Second * 60,
		BodyLimit:    256 * 1024 * 1024,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DocumentUC:   documentUC,
		ProductionUC: productionUC,
		CompanyUC:    companyUC,
		Diagnostics:  diagnosticsRepo,
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
