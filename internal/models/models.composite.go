// FilePath: internal/models/models.composite.go
package models

import "time"

// FeederLiveState combines the poller's last applied result with the
// derived capacity estimate for the live panel.
type FeederLiveState struct {
	Snapshot     *StatusSnapshot `json:"snapshot,omitempty"`
	Available    bool            `json:"available"`
	MaxCapacityG int             `json:"max_capacity_g"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LogbookState is the full log panel payload: the visible page, the view
// options it was computed under, and the stats over the filtered set.
type LogbookState struct {
	Views     []LogView `json:"views"`
	Range     LogRange  `json:"range"`
	Expanded  bool      `json:"expanded"`
	FilteredN int       `json:"filtered_n"`
	Stats     Stats     `json:"stats"`
	UpdatedAt time.Time `json:"updated_at"`
}
