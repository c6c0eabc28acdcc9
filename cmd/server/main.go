package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hardikkaaccount/chat-app/internal/config"
	"github.com/hardikkaaccount/chat-app/internal/database"
	"github.com/hardikkaaccount/chat-app/internal/handler"
	"github.com/hardikkaaccount/chat-app/internal/middleware"
	"github.com/hardikkaaccount/chat-app/internal/repository"
	"github.com/hardikkaaccount/chat-app/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Database
	db, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Service
	chatSvc := service.NewChatService(userRepo, groupRepo, messageRepo, cfg.JWTSecret, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.AllowOrigins))

	// Health
	healthH := handler.NewHealthHandler(db)
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API
	api := app.Group("/api")

	authH := handler.NewAuthHandler(chatSvc)
	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)
	api.Get("/me", middleware.Auth(cfg.JWTSecret), authH.Me)

	groupH := handler.NewGroupHandler(chatSvc)
	api.Get("/groups", groupH.List)
	api.Post("/groups", groupH.Create)

	messageH := handler.NewMessageHandler(chatSvc)
	api.Get("/messages/:groupId", messageH.List)
	api.Post("/messages", messageH.Post)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("chat backend running", "port", cfg.Port, "env", cfg.Env)

	<-quit
	log.Info("shutting down")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	log.Info("server stopped")
}
