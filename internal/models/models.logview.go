// FilePath: internal/models/models.logview.go
package models

import "fmt"

// LogRange selects the calendar window of the feeding log views.
type LogRange string

const (
	RangeToday LogRange = "today"
	RangeWeek  LogRange = "week"
)

func (r LogRange) Valid() bool {
	return r == RangeToday || r == RangeWeek
}

// LogView is the render-ready projection of a single FeedingEvent. Views
// are recomputed from their events on every load; they carry no state of
// their own.
type LogView struct {
	EventID     int64     `json:"event_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	AmountLabel string    `json:"amount_label"`
	Status      LogStatus `json:"status"`
	FeedKind    FeedKind  `json:"feed_kind"`
	ImageRef    string    `json:"image_ref,omitempty"`
}

// NewLogView projects an event into its display form.
func NewLogView(e FeedingEvent) LogView {
	label := "—"
	if e.AmountG > 0 {
		label = fmt.Sprintf("%d g", e.AmountG)
	}
	return LogView{
		EventID:     e.ID,
		Date:        e.Timestamp.Format("2006-01-02"),
		Time:        e.Timestamp.Format("15:04"),
		AmountLabel: label,
		Status:      e.EventType.Status(),
		FeedKind:    e.EventType.Kind(),
		ImageRef:    e.ImageRef,
	}
}

// Stats summarizes the currently filtered slice of the feeding history.
// TotalDispensedG and Percentage only count events classified Completed.
type Stats struct {
	CompletedCount  int `json:"completed_count"`
	TotalDispensedG int `json:"total_dispensed_g"`
	Percentage      int `json:"percentage"`
}
