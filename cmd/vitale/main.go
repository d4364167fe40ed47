package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"vitale/internal/api"
	"vitale/internal/config"
	"vitale/internal/credentials"
	"vitale/internal/db"
	"vitale/internal/services"
)

const minSecretKeyLength = 32

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":   {},
	"changeme": {},
}

func main() {
	cfg := config.Load()
	time.Local = cfg.Location

	secretKey, err := resolveSecretKey(cfg.SecretKey)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	port, err := resolvePort(cfg.Port)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store, err := credentials.Load(cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("credential store init failed: %v (run credgen to create %s)", err, cfg.CredentialsFile)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	analyzer := services.NewGeminiService(cfg.GoogleAPIKey, cfg.GeminiModel)
	if !analyzer.Configured() {
		log.Printf("GOOGLE_API_KEY is not set, meal analysis stays disabled")
	}

	handler := api.NewHandler(database, store, analyzer, secretKey, cfg.Location, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Vitale",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	if info, err := os.Stat(cfg.WebDir); err == nil && info.IsDir() {
		app.Static("/", cfg.WebDir)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("vitale listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses a known placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return port, nil
}
