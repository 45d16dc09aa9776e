package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/tasker-otp/internal/config"
	jwtinfra "github.com/tasker-otp/internal/infrastructure/jwt"
	"github.com/tasker-otp/internal/infrastructure/smtp"
	transporthttp "github.com/tasker-otp/internal/transport/http"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	log := setupLogger(cfg.AppEnv)
	slog.SetDefault(log)
	if envErr != nil {
		log.Debug("no .env file found, reading from environment")
	}

	// Secrets and mail settings are validated up front; nothing is read lazily.
	tokens, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Error("init token provider", "err", err)
		os.Exit(1)
	}
	mailer, err := smtp.NewMailer(cfg)
	if err != nil {
		log.Error("init mailer", "err", err)
		os.Exit(1)
	}

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Mailer: mailer,
		Tokens: tokens,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.SMTP.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug, TimeFormat: time.Kitchen}))
	}
}
