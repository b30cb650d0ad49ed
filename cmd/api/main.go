package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/futurestec/crm-leads-api/docs"
	"github.com/futurestec/crm-leads-api/internal/application/auth"
	"github.com/futurestec/crm-leads-api/internal/application/comment"
	"github.com/futurestec/crm-leads-api/internal/application/lead"
	"github.com/futurestec/crm-leads-api/internal/infrastructure/mail"
	"github.com/futurestec/crm-leads-api/internal/infrastructure/postgres"
	httpRouter "github.com/futurestec/crm-leads-api/internal/interfaces/http"
	"github.com/futurestec/crm-leads-api/pkg/config"
	"github.com/futurestec/crm-leads-api/pkg/logger"
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

	leadRepo := postgres.NewLeadRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	notifier := mail.NewSMTPNotifier(cfg.SMTP)

	leadUC := lead.NewLeadUseCase(leadRepo, notifier)
	commentUC := comment.NewCommentUseCase(commentRepo, leadRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // la SPA llama desde otro origen

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "CRM Leads API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		LeadUC:    leadUC,
		CommentUC: commentUC,
		JWTSecret: cfg.JWT.Secret,
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
