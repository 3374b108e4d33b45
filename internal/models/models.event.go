// FilePath: internal/models/models.event.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// EventType labels the origin of a feeding event as reported by the log
// service. Unrecognized values are carried verbatim and classified as
// Unknown, never silently coerced.
type EventType string

const (
	EventManualFeed          EventType = "MANUAL_FEED"
	EventAutomaticFeed       EventType = "AUTOMATIC_FEED"
	EventScheduledFeed       EventType = "SCHEDULED_FEED"
	EventFeedingStart        EventType = "FEEDING_START"
	EventFeedingCompleted    EventType = "FEEDING_COMPLETED"
	EventCompleted           EventType = "COMPLETED"
	EventDispensingCompleted EventType = "DISPENSING_COMPLETED"
)

// LogStatus is the classified outcome of a feeding event.
type LogStatus string

const (
	StatusCompleted LogStatus = "Completed"
	StatusUnknown   LogStatus = "Unknown"
)

// FeedKind distinguishes schedule-driven dispensing from feeds a person
// triggered (dashboard button or the device's hardware button).
type FeedKind string

const (
	FeedAutomatic FeedKind = "Automatic"
	FeedManual    FeedKind = "Manual"
)

// Status classifies the event type. Every recognized type counts as a
// completed feeding; anything else is explicitly Unknown.
func (t EventType) Status() LogStatus {
	switch t {
	case EventManualFeed, EventAutomaticFeed, EventScheduledFeed,
		EventFeedingStart, EventFeedingCompleted, EventCompleted,
		EventDispensingCompleted:
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// Kind reports whether the event came from the schedule or a person.
func (t EventType) Kind() FeedKind {
	switch t {
	case EventAutomaticFeed, EventScheduledFeed:
		return FeedAutomatic
	default:
		return FeedManual
	}
}

const eventTimeLayout = "2006-01-02 15:04:05"

// EventTime wraps time.Time for the log service's timestamp encoding. The
// upstream emits the space-separated layout; RFC3339 is accepted too so a
// newer upstream does not break ingestion.
type EventTime struct {
	time.Time
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(eventTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("unsupported timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(eventTimeLayout) + `"`), nil
}

// FeedingEvent is one entry of the feeding history. Events are immutable
// after ingest; display views are projected from them, never written back.
type FeedingEvent struct {
	ID        int64     `json:"id"`
	Timestamp EventTime `json:"timestamp"`
	AmountG   int       `json:"amount"`
	EventType EventType `json:"event_type"`
	Source    string    `json:"source,omitempty"`
	ImageRef  string    `json:"image_path,omitempty"`
}
