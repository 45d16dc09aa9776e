package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tasker-otp/internal/application/otp"
	"github.com/tasker-otp/internal/config"
	"github.com/tasker-otp/internal/transport/http/handler"
	appmiddleware "github.com/tasker-otp/internal/transport/http/middleware"
)

const maxBodyBytes = 1 << 20

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.MaxBody(maxBodyBytes))
	r.NotFound(appmiddleware.NotFound)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowed)

	otpSvc := otp.NewService(otp.ServiceDeps{
		Mailer:       deps.Mailer,
		Tokens:       deps.Tokens,
		Secret:       []byte(cfg.OTP.JWTSecret),
		AppName:      cfg.AppName,
		GenerateCode: deps.GenerateCode,
		Logger:       logger,
	})

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOTPHandler(otpSvc, logger)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Post("/api/send-otp", otpH.Send)
	r.Options("/api/send-otp", handler.Preflight)
	r.Post("/api/verify-otp", otpH.Verify)
	r.Options("/api/verify-otp", handler.Preflight)

	return r
}
