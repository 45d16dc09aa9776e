package reminder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasker-otp/internal/domain"
)

func TestReadEvents_ParsesAndSkips(t *testing.T) {
	in := strings.NewReader("boot\n\n# comment\nSCREEN_ON\nbogus\n  user_present  \n")
	out := make(chan domain.Event, 10)

	require.NoError(t, ReadEvents(context.Background(), in, out, quietLogger()))

	var got []domain.Event
	for ev := range out {
		got = append(got, ev)
	}
	assert.Equal(t, []domain.Event{domain.EventBoot, domain.EventScreenOn, domain.EventUserPresent}, got)
}

func TestReadEvents_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := make(chan domain.Event)

	require.NoError(t, ReadEvents(ctx, strings.NewReader("screen_on\n"), out, quietLogger()))
	_, open := <-out
	assert.False(t, open)
}
