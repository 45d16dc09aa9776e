package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrTokenInvalidOrExpired = errors.New("token invalid or expired")
	ErrEmailMismatch         = errors.New("email mismatch")
	ErrInvalidOTP            = errors.New("invalid otp")
	ErrIssuanceFailed        = errors.New("issuance failed")
	ErrVerificationFailed    = errors.New("verification failed")
)
