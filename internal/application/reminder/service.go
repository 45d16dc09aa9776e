package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tasker-otp/internal/domain"
	"golang.org/x/time/rate"
)

// DefaultCooldown collapses the screen-on/user-present pair one unlock produces.
const DefaultCooldown = 5 * time.Second

// TaskCounter reports how many tasks are still open.
type TaskCounter interface {
	CountIncomplete(ctx context.Context) (int, error)
}

// Notifier shows a notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// ServiceDeps groups the relay collaborators.
type ServiceDeps struct {
	Counter  TaskCounter
	Notifier Notifier
	// Cooldown is the minimum gap between two summaries. Zero uses
	// DefaultCooldown; a negative value disables debouncing.
	Cooldown time.Duration
	Logger   *slog.Logger
}

// Service turns device unlock events into task summaries.
type Service struct {
	counter  TaskCounter
	notifier Notifier
	limiter  *rate.Limiter // nil when debouncing is disabled
	log      *slog.Logger
}

func NewService(d ServiceDeps) *Service {
	cooldown := d.Cooldown
	if cooldown == 0 {
		cooldown = DefaultCooldown
	}
	var limiter *rate.Limiter
	if cooldown > 0 {
		limiter = rate.NewLimiter(rate.Every(cooldown), 1)
	}
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		counter:  d.Counter,
		notifier: d.Notifier,
		limiter:  limiter,
		log:      log,
	}
}

// Handle processes a single event. Only unlock events can notify.
func (s *Service) Handle(ctx context.Context, ev domain.Event) error {
	switch {
	case ev == domain.EventBoot:
		s.log.Info("device booted, monitoring unlock events")
		return nil
	case !ev.IsUnlock():
		return fmt.Errorf("unhandled event %q: %w", ev, domain.ErrInvalidRequest)
	}

	if s.coolingDown() {
		s.log.Debug("summary suppressed by cooldown", "event", ev)
		return nil
	}

	count, err := s.counter.CountIncomplete(ctx)
	if err != nil {
		return fmt.Errorf("count incomplete tasks: %w", err)
	}
	// A failed count leaves the cooldown untouched so the paired event retries.
	s.startCooldown()
	if count <= 0 {
		s.log.Debug("no incomplete tasks found", "event", ev)
		return nil
	}

	n := domain.NewTaskSummary(count)
	if err := s.notifier.Notify(ctx, n); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	s.log.Info("task summary sent", "event", ev, "count", count)
	return nil
}

func (s *Service) coolingDown() bool {
	return s.limiter != nil && s.limiter.Tokens() < 1
}

func (s *Service) startCooldown() {
	if s.limiter != nil {
		s.limiter.Allow()
	}
}

// Run handles events until ctx is cancelled or events is closed. Handler
// errors are logged and do not stop the loop.
func (s *Service) Run(ctx context.Context, events <-chan domain.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.Handle(ctx, ev); err != nil {
				s.log.Error("handle event", "event", ev, "err", err)
			}
		}
	}
}
