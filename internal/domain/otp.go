package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// OTPTokenTTL is the lifetime of an issued OTP token.
const OTPTokenTTL = 5 * time.Minute

// IssueOTPRequest is the body of POST /api/send-otp.
type IssueOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// VerifyOTPRequest is the body of POST /api/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   Code   `json:"otp" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// IssuedOTP is the result of a successful issuance. Code is returned to the
// caller of the service only; it never leaves the process except by email.
type IssuedOTP struct {
	Token     string
	TokenID   string
	Code      string
	ExpiresAt time.Time
}

// OTPClaims is the verified payload carried by an OTP token.
type OTPClaims struct {
	Email     string
	Hash      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Code is a submitted one-time passcode. Clients send it either as a JSON
// string or as a bare number; both decode to the same digits. A numeric zero
// counts as absent.
type Code string

func (c *Code) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("otp must be a string or number: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*c = ""
		return nil
	}
	*c = Code(n.String())
	return nil
}
