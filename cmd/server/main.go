package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/abdodolh14141/Website-Movies/internal/application/services"
	"github.com/abdodolh14141/Website-Movies/internal/catalog"
	"github.com/abdodolh14141/Website-Movies/internal/config"
	"github.com/abdodolh14141/Website-Movies/internal/db"
	"github.com/abdodolh14141/Website-Movies/internal/delivery/handler"
	"github.com/abdodolh14141/Website-Movies/internal/infrastructure"
	"github.com/abdodolh14141/Website-Movies/internal/infrastructure/mongodb"
	"github.com/abdodolh14141/Website-Movies/internal/messaging"
	"github.com/abdodolh14141/Website-Movies/web"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("mongo disconnect:", err)
		}
	}()
	log.Println("Connected to MongoDB.")

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureUserIndexes(ctx, database); err != nil {
		log.Fatal("Failed to create user indexes:", err)
	}

	userRepo := mongodb.NewUserRepository(database)

	var limiter infrastructure.Limiter
	if cfg.RedisAddr != "" {
		limiter = infrastructure.NewRedisLimiter(
			infrastructure.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword),
			cfg.LoginWindow, cfg.LoginMaxTries,
		)
		log.Println("Login limiter backed by Redis.")
	} else {
		limiter = infrastructure.NewRateLimiter(cfg.LoginWindow, cfg.LoginMaxTries)
	}

	var publisher *messaging.Publisher
	if cfg.NatsURL != "" {
		publisher, err = messaging.Connect(cfg.NatsURL)
		if err != nil {
			// Events are best effort; a missing broker is not fatal.
			log.Println("Failed to connect to NATS:", err)
		} else {
			defer publisher.Close()
		}
	}

	mailer := infrastructure.NewMailer(cfg.EmailAPIKey, cfg.EmailSender)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	oauth := infrastructure.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)

	userService := services.NewUserService(userRepo, mailer, publisher)
	authService := services.NewAuthService(userRepo, userService, jwtService, limiter)

	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	rotator := catalog.NewRotator(5 * time.Second)
	rotator.Start()
	defer rotator.Stop()

	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("templates:", err)
	}
	e.Renderer = renderer

	handler.Register(e,
		handler.NewUserHandler(userService),
		handler.NewAuthHandler(authService, oauth),
		handler.NewMovieHandler(catalogClient, rotator),
		handler.NewPageHandler(catalogClient, rotator),
	)

	go func() {
		log.Println("Server running on", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
