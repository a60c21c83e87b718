package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/warbler-backend/internal/handlers/http"
	"github.com/rafabene/warbler-backend/internal/infrastructure/config"
	"github.com/rafabene/warbler-backend/internal/infrastructure/i18n"
	"github.com/rafabene/warbler-backend/internal/infrastructure/logging"
	"github.com/rafabene/warbler-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/warbler-backend/internal/infrastructure/security"
	"github.com/rafabene/warbler-backend/internal/infrastructure/session"
	"github.com/rafabene/warbler-backend/internal/services"
)

// @title        Warbler API
// @version      1.0
// @description  Usuários, mensagens, follows e likes.
// @host         localhost:8080
// @BasePath     /
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting warbler backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.AutoMigrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
		logger.Info("database schema migrated")
	}

	// Conectar ao Redis (sessões)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	redisClient, err := session.NewRedisClient(startupCtx, cfg.Redis.URL)
	cancelStartup()
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		log.Fatal(err)
	}
	defer func() { _ = redisClient.Close() }()

	// Inicializar i18n
	var i18nService *i18n.Service
	if cfg.I18n.LocalesDir != "" {
		i18nService, err = i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Segurança e sessões
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	tokens := security.NewJWTIssuer(cfg.Session.Secret)
	sessionStore := session.NewRedisStore(redisClient, cfg.Session.TTL, logger)

	// Inicializar services
	accountService, err := services.NewAccountService(userRepo, hasher, uow, logger)
	if err != nil {
		logger.Error("failed to initialize account service", "error", err)
		log.Fatal(err)
	}
	sessionService := services.NewSessionService(accountService, sessionStore, tokens, logger)
	relationshipService := services.NewRelationshipService(userRepo, followRepo, uow, logger)
	messageService := services.NewMessageService(userRepo, messageRepo, likeRepo, followRepo, uow, logger)
	userService := services.NewUserService(userRepo, messageRepo, followRepo, likeRepo, hasher, uow, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(accountService, sessionService, httphandlers.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		TTL:    cfg.Session.TTL,
	})
	userHandler := httphandlers.NewUserHandler(userService, relationshipService, messageService)
	messageHandler := httphandlers.NewMessageHandler(messageService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:           i18nService,
	}, authHandler, userHandler, messageHandler)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
