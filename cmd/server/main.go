package main

import (
	"log"
	"net/http"

	_ "classdesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"classdesk/internal/cache"
	"classdesk/internal/config"
	"classdesk/internal/db"
	"classdesk/internal/handler"
	"classdesk/internal/mail"
	"classdesk/internal/model"
	"classdesk/internal/repository"
	"classdesk/internal/router"
	"classdesk/internal/service"
	"classdesk/internal/session"
)

// @title Classdesk API
// @version 1.0
// @description Education platform API with email-verified registration, cookie sessions, and short-code instructions.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Credential{},
		&model.VerificationCode{},
		&model.Instruction{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	verificationRepo := repository.NewVerificationRepository(gormDB)
	instructionRepo := repository.NewInstructionRepository(gormDB)

	// Initialize session store and cookie settings
	sessions := session.NewStore(cacheClient, cfg.SessionTTL)
	cookies := session.CookieConfig{
		Name:   cfg.CookieName,
		Secure: cfg.CookieSecure,
		TTL:    cfg.SessionTTL,
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, verificationRepo, sessions)
	verificationService := service.NewVerificationService(
		verificationRepo,
		cacheClient,
		mail.NewLogMailer(),
		cfg.VerifyCodeTTL,
		cfg.ResendCooldown,
	)
	userService := service.NewUserService(userRepo, sessions, cacheClient)
	instructionService := service.NewInstructionService(instructionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, verificationService, cookies)
	userHandler := handler.NewUserHandler(userService, cookies)
	instructionHandler := handler.NewInstructionHandler(instructionService)

	// Register routes
	router.Register(e, authHandler, userHandler, instructionHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
