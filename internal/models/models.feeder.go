// FilePath: internal/models/models.feeder.go
package models

import "time"

// StatusSnapshot is one immutable device status reading. A snapshot is
// produced per poll cycle and only survives as the poller's last-known
// state; it is never mutated in place.
type StatusSnapshot struct {
	WeightG       float64   `json:"weight_g"`
	Online        bool      `json:"online"`
	ServoOpen     bool      `json:"servo_open"`
	FeedingActive bool      `json:"feeding_active"`
	BuzzerActive  bool      `json:"buzzer_active"`
	ReceivedAt    time.Time `json:"received_at"`
}

// FeedingSchedule is one device-side schedule slot. The device stores a
// fixed number of slots addressed by index.
type FeedingSchedule struct {
	Slot    int  `json:"slot"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	AmountG int  `json:"amount_g"`
	Enabled bool `json:"enabled"`
}
