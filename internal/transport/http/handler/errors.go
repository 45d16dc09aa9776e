package handler

import (
	"errors"
	"net/http"

	"github.com/tasker-otp/internal/domain"
)

var errTrailingData = errors.New("unexpected data after JSON body")

const (
	msgEmailRequired   = "Email is required"
	msgVerifyFields    = "Email, OTP, and token are required"
	msgSendFailed      = "Failed to send OTP"
	msgTokenInvalid    = "OTP expired or invalid token"
	msgEmailMismatch   = "Invalid email"
	msgInvalidOTP      = "Invalid OTP"
	msgVerifyFailed    = "Verification failed"
	msgVerifySucceeded = "OTP verified successfully"
)

// verifyFailure maps a verification error to its status and body.
// Client faults carry success=false except missing fields, which use the
// plain error envelope.
func verifyFailure(err error) (int, interface{}) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, MessageEnvelope{Error: msgVerifyFields}
	case errors.Is(err, domain.ErrTokenInvalidOrExpired):
		return http.StatusBadRequest, OTPEnvelope{Error: msgTokenInvalid}
	case errors.Is(err, domain.ErrEmailMismatch):
		return http.StatusBadRequest, OTPEnvelope{Error: msgEmailMismatch}
	case errors.Is(err, domain.ErrInvalidOTP):
		return http.StatusBadRequest, OTPEnvelope{Error: msgInvalidOTP}
	default:
		return http.StatusInternalServerError, OTPEnvelope{Error: msgVerifyFailed}
	}
}

// issueFailure maps an issuance error to its status and body.
func issueFailure(err error) (int, interface{}) {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return http.StatusBadRequest, MessageEnvelope{Error: msgEmailRequired}
	}
	env := OTPEnvelope{Error: msgSendFailed, Details: err.Error()}
	var de *domain.DeliveryError
	if errors.As(err, &de) {
		env.Code = de.Code
	}
	return http.StatusInternalServerError, env
}
