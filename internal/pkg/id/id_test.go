package id

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesAsULID(t *testing.T) {
	s := New()
	assert.Len(t, s, 26)
	_, err := ulid.Parse(s)
	require.NoError(t, err)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		s := New()
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}
