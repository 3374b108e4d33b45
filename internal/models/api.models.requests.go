// FilePath: internal/models/api.models.requests.go
package models

// Request payloads of the mutating endpoints. The dashboard submits plain
// form encodings; fields are decoded with gorilla/schema.

// LogViewRequest adjusts the log panel's view options without refetching.
// Absent fields leave the corresponding option untouched.
type LogViewRequest struct {
	Range    string `schema:"range"`
	Expanded *bool  `schema:"expanded"`
}

// FeedRequest triggers a dispensing run. A missing amount falls back to
// the current dispense amount.
type FeedRequest struct {
	AmountG *int `schema:"amount_g"`
}

// AmountRequest replaces the dispense amount. The value is quantized and
// clamped by the controller; non-numeric input never reaches it.
type AmountRequest struct {
	AmountG int `schema:"amount_g,required"`
}

// ScheduleRequest programs one device schedule slot.
type ScheduleRequest struct {
	Slot    int  `schema:"slot"`
	Hour    int  `schema:"hour"`
	Minute  int  `schema:"minute"`
	AmountG int  `schema:"amount_g,required"`
	Enabled bool `schema:"enabled"`
}
