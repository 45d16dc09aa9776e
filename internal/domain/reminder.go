package domain

import (
	"fmt"
	"strings"
)

// Event is a device event forwarded to the reminder relay.
type Event string

const (
	EventBoot        Event = "boot"
	EventScreenOn    Event = "screen_on"
	EventUserPresent Event = "user_present"
)

// ParseEvent maps an event name (case-insensitive, surrounding space ignored) to an Event.
func ParseEvent(s string) (Event, error) {
	switch e := Event(strings.ToLower(strings.TrimSpace(s))); e {
	case EventBoot, EventScreenOn, EventUserPresent:
		return e, nil
	default:
		return "", fmt.Errorf("unknown event %q: %w", s, ErrInvalidRequest)
	}
}

// IsUnlock reports whether the event signals the user unlocking the device.
func (e Event) IsUnlock() bool {
	return e == EventScreenOn || e == EventUserPresent
}

// Notification is a task summary shown to the user.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Count int    `json:"count"`
}

// NewTaskSummary builds the reminder for count incomplete tasks.
func NewTaskSummary(count int) Notification {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	return Notification{
		Title: "Task Reminder",
		Body:  fmt.Sprintf("You still have %d %s to complete", count, noun),
		Count: count,
	}
}
