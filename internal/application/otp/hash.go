package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// GenerateCode draws a code uniformly from [100000, 999999]. Codes never
// start with zero.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+codeMin), nil
}

// Hash binds code to email under secret: hex(HMAC-SHA256(secret, email ":" code)).
func Hash(secret []byte, email, code string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(email + ":" + code))
	return hex.EncodeToString(mac.Sum(nil))
}

// hashEqual compares two hex digests in constant time.
func hashEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
