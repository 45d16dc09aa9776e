package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. Token IDs use it so log lines for one
// issuance sort together and can be matched to a later verification.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
