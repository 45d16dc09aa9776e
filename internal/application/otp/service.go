package otp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tasker-otp/internal/domain"
	"github.com/tasker-otp/internal/pkg/validate"
)

// Mailer delivers the code to the user.
type Mailer interface {
	SendEmail(ctx context.Context, e domain.Email) error
}

// TokenProvider signs and verifies OTP tokens.
type TokenProvider interface {
	Sign(email, hash string) (string, *domain.OTPClaims, error)
	Verify(token string) (*domain.OTPClaims, error)
}

// Service issues and verifies email one-time passcodes. It keeps no state:
// everything needed for verification travels in the token.
type Service interface {
	Issue(ctx context.Context, req domain.IssueOTPRequest) (*domain.IssuedOTP, error)
	Verify(ctx context.Context, req domain.VerifyOTPRequest) (*domain.OTPClaims, error)
}

// ServiceDeps groups the service collaborators.
type ServiceDeps struct {
	Mailer  Mailer
	Tokens  TokenProvider
	Secret  []byte
	AppName string
	// GenerateCode defaults to GenerateCode.
	GenerateCode func() (string, error)
	Logger       *slog.Logger
}

type service struct {
	mailer   Mailer
	tokens   TokenProvider
	secret   []byte
	appName  string
	generate func() (string, error)
	log      *slog.Logger
}

func NewService(d ServiceDeps) Service {
	s := &service{
		mailer:   d.Mailer,
		tokens:   d.Tokens,
		secret:   d.Secret,
		appName:  d.AppName,
		generate: d.GenerateCode,
		log:      d.Logger,
	}
	if s.generate == nil {
		s.generate = GenerateCode
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

func (s *service) Issue(ctx context.Context, req domain.IssueOTPRequest) (*domain.IssuedOTP, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}

	code, err := s.generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIssuanceFailed, err)
	}
	token, claims, err := s.tokens.Sign(req.Email, Hash(s.secret, req.Email, code))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIssuanceFailed, err)
	}

	msg, err := renderCodeEmail(s.appName, req.Email, code, claims.ExpiresAt.Sub(claims.IssuedAt))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIssuanceFailed, err)
	}
	if err := s.mailer.SendEmail(ctx, msg); err != nil {
		s.log.Error("send otp email", "token_id", claims.TokenID, "err", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrIssuanceFailed, err)
	}

	s.log.Info("otp issued", "token_id", claims.TokenID, "expires_at", claims.ExpiresAt)
	return &domain.IssuedOTP{
		Token:     token,
		TokenID:   claims.TokenID,
		Code:      code,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Verify runs token, email and hash checks in that order. Tokens are not
// consumed, so the same triple verifies again until the token expires.
func (s *service) Verify(_ context.Context, req domain.VerifyOTPRequest) (*domain.OTPClaims, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}

	claims, err := s.tokens.Verify(req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalidOrExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrVerificationFailed, err)
	}
	if claims.Email != req.Email {
		return nil, fmt.Errorf("token bound to another address: %w", domain.ErrEmailMismatch)
	}
	if !hashEqual(claims.Hash, Hash(s.secret, req.Email, string(req.OTP))) {
		return nil, fmt.Errorf("code does not match: %w", domain.ErrInvalidOTP)
	}
	s.log.Debug("otp verified", "token_id", claims.TokenID)
	return claims, nil
}
