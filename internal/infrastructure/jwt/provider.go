package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tasker-otp/internal/config"
	"github.com/tasker-otp/internal/domain"
	"github.com/tasker-otp/internal/pkg/id"
)

// Claims holds the OTP token payload fields.
type Claims struct {
	Email string `json:"email"`
	Hash  string `json:"hash"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 OTP tokens.
type Provider struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// Option customises a Provider.
type Option func(*Provider)

// WithClock replaces the time source used for iat, exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// WithExpiry overrides the token lifetime.
func WithExpiry(d time.Duration) Option {
	return func(p *Provider) { p.expiry = d }
}

func NewProvider(cfg *config.Config, opts ...Option) (*Provider, error) {
	if cfg.OTP.JWTSecret == "" {
		return nil, errors.New("OTP_JWT_SECRET is required")
	}
	p := &Provider{
		secret: []byte(cfg.OTP.JWTSecret),
		expiry: domain.OTPTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Sign issues a token binding email to hash.
func (p *Provider) Sign(email, hash string) (string, *domain.OTPClaims, error) {
	now := p.now()
	claims := Claims{
		Email: email,
		Hash:  hash,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.New(),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign otp token: %w", err)
	}
	return signed, toDomain(&claims), nil
}

// Verify checks signature and expiry. Every failure wraps
// domain.ErrTokenInvalidOrExpired; callers cannot tell tampering from expiry.
func (p *Provider) Verify(tokenStr string) (*domain.OTPClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalidOrExpired, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrTokenInvalidOrExpired)
	}
	return toDomain(claims), nil
}

func toDomain(c *Claims) *domain.OTPClaims {
	out := &domain.OTPClaims{
		Email:   c.Email,
		Hash:    c.Hash,
		TokenID: c.ID,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
