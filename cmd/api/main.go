package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/artonus/pos-api/internal/api"
	"github.com/artonus/pos-api/internal/core/ports"
	"github.com/artonus/pos-api/internal/infrastructure/config"
	mongodb "github.com/artonus/pos-api/internal/infrastructure/db/mongo"
	redisdb "github.com/artonus/pos-api/internal/infrastructure/db/redis"
	"github.com/artonus/pos-api/internal/infrastructure/mailer"
	"github.com/artonus/pos-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mail := buildMailer(cfg)
	e := api.NewRouter(db, rdb, mail, log, cfg.JWTSecret, cfg.TokenTTL)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("email_provider", cfg.Email.Provider).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// buildMailer selects the confirmation-mail transport from configuration.
func buildMailer(cfg *config.Config) ports.Mailer {
	log := logger.Get()
	switch cfg.Email.Provider {
	case "smtp":
		return mailer.NewSMTPMailer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.From,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPass,
			cfg.Email.SMTPUseTLS,
		)
	case "gmail":
		return mailer.NewGmailMailer(
			cfg.Email.GmailClientID,
			cfg.Email.GmailClientSecret,
			cfg.Email.GmailRefreshToken,
			cfg.Email.From,
		)
	default:
		return mailer.NewDevMailer(log)
	}
}
