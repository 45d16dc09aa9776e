package http

import (
	"log/slog"

	"github.com/tasker-otp/internal/application/otp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Mailer otp.Mailer
	Tokens otp.TokenProvider
	// GenerateCode overrides code generation; nil uses otp.GenerateCode.
	GenerateCode func() (string, error)
	Logger       *slog.Logger
}
