// FilePath: internal/device/device.client.go
package device

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/animalhaven/feederhub/internal/models"
)

// statusPayload is the device's wire format for GET /get_status.
type statusPayload struct {
	WeightG       float64 `json:"weight"`
	Online        bool    `json:"online"`
	ServoOpen     bool    `json:"servo_open"`
	FeedingActive bool    `json:"feeding_active"`
	BuzzerActive  bool    `json:"buzzer_active"`
}

// Client talks to the feeder device's built-in HTTP server.
type Client struct {
	http *resty.Client
	now  func() time.Time
}

// New creates a device client for the given base URL. The timeout covers
// each request end to end; the device answers from a microcontroller, so
// anything slower than a couple of seconds is as good as unreachable.
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: httpClient, now: time.Now}
}

// FetchStatus reads the device's live status. Transport errors, non-2xx
// answers and undecodable bodies all come back as plain errors; the
// caller's debounce logic does not care which one it was.
func (c *Client) FetchStatus(ctx context.Context) (*models.StatusSnapshot, error) {
	var payload statusPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		ForceContentType("application/json").
		Get("/get_status")
	if err != nil {
		return nil, fmt.Errorf("device status request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("device status: unexpected response %s", resp.Status())
	}
	return &models.StatusSnapshot{
		WeightG:       payload.WeightG,
		Online:        payload.Online,
		ServoOpen:     payload.ServoOpen,
		FeedingActive: payload.FeedingActive,
		BuzzerActive:  payload.BuzzerActive,
		ReceivedAt:    c.now(),
	}, nil
}

// SetTargetWeight mirrors the dispense amount onto the device.
func (c *Client) SetTargetWeight(ctx context.Context, grams int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("weight", strconv.Itoa(grams)).
		Get("/set_target_weight")
	if err != nil {
		return fmt.Errorf("device target weight: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("device target weight: unexpected response %s", resp.Status())
	}
	return nil
}

// TriggerDispensing starts one dispensing run of the given amount.
func (c *Client) TriggerDispensing(ctx context.Context, grams int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"amount": strconv.Itoa(grams)}).
		Post("/trigger_dispensing")
	if err != nil {
		return fmt.Errorf("device dispensing trigger: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("device dispensing trigger: unexpected response %s", resp.Status())
	}
	return nil
}

// SetSchedule programs one schedule slot on the device.
func (c *Client) SetSchedule(ctx context.Context, s models.FeedingSchedule) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"slot":    strconv.Itoa(s.Slot),
			"hour":    strconv.Itoa(s.Hour),
			"minute":  strconv.Itoa(s.Minute),
			"amount":  strconv.Itoa(s.AmountG),
			"enabled": strconv.FormatBool(s.Enabled),
		}).
		Get("/set_schedule")
	if err != nil {
		return fmt.Errorf("device schedule: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("device schedule: unexpected response %s", resp.Status())
	}
	return nil
}
