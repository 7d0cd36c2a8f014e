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

	appanalytics "github.com/tu-usuario/dashboard-pro/internal/application/analytics"
	"github.com/tu-usuario/dashboard-pro/internal/application/auth"
	"github.com/tu-usuario/dashboard-pro/internal/application/usecase"
	"github.com/tu-usuario/dashboard-pro/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/dashboard-pro/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/dashboard-pro/internal/interfaces/http"
	"github.com/tu-usuario/dashboard-pro/pkg/config"
	"github.com/tu-usuario/dashboard-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store en memoria: instancia explícita construida acá, sin singleton
	// global. El estado vive lo que vive el proceso.
	var store *memory.Store
	if cfg.App.SeedDemo {
		store = memory.NewSeededStore()
		log.Info().Msg("store sembrado con datos de demostración")
	} else {
		store = memory.NewStore()
	}

	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	messageRepo := memory.NewMessageRepository(store)

	userUC := usecase.NewUserUseCase(userRepo, notificationRepo)
	productUC := usecase.NewProductUseCase(productRepo, notificationRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, productRepo, notificationRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo, userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(userRepo, productRepo, orderRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(userRepo, productRepo, messageRepo, dashboardUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
	app.Use(httpRouter.RequestIDMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dashboard Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:         userUC,
		ProductUC:      productUC,
		OrderUC:        orderUC,
		NotificationUC: notificationUC,
		MessageUC:      messageUC,
		ReportUC:       reportUC,
		DashboardUC:    dashboardUC,
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
