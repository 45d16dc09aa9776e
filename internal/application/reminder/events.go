package reminder

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/tasker-otp/internal/domain"
)

// ReadEvents parses one event name per line from r and sends it to out.
// Blank lines and lines starting with '#' are skipped; unknown names are
// logged and dropped. out is closed when r is exhausted or ctx is done.
func ReadEvents(ctx context.Context, r io.Reader, out chan<- domain.Event, log *slog.Logger) error {
	defer close(out)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := domain.ParseEvent(line)
		if err != nil {
			log.Warn("ignoring event", "line", line, "err", err)
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
	return sc.Err()
}
