// FilePath: internal/logservice/logservice.client.go
package logservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/animalhaven/feederhub/internal/models"
)

// Client talks to the log service, the companion backend that records
// feeding events and mirrors the dispense-amount setting.
type Client struct {
	http *resty.Client
}

// New creates a log-service client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: httpClient}
}

// FetchLogs returns the full feeding history, newest first as far as the
// upstream is concerned. Callers re-sort anyway and must not rely on the
// upstream order.
func (c *Client) FetchLogs(ctx context.Context) ([]models.FeedingEvent, error) {
	var events []models.FeedingEvent
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&events).
		ForceContentType("application/json").
		Get("/get_feeding_logs")
	if err != nil {
		return nil, fmt.Errorf("fetch feeding logs: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch feeding logs: unexpected response %s", resp.Status())
	}
	return events, nil
}

// DeleteLog removes a single feeding event upstream.
func (c *Client) DeleteLog(ctx context.Context, id int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/delete_log/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete log %d: %w", id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete log %d: unexpected response %s", id, resp.Status())
	}
	return nil
}

// DeleteAllLogs clears the upstream feeding history.
func (c *Client) DeleteAllLogs(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/delete_all_logs")
	if err != nil {
		return fmt.Errorf("delete all logs: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete all logs: unexpected response %s", resp.Status())
	}
	return nil
}

// SetDispenseAmount mirrors the dispense amount into the log service's
// persisted configuration.
func (c *Client) SetDispenseAmount(ctx context.Context, grams int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"amount": strconv.Itoa(grams)}).
		Post("/set_dispense_amount")
	if err != nil {
		return fmt.Errorf("set dispense amount: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("set dispense amount: unexpected response %s", resp.Status())
	}
	return nil
}

// GetDispenseAmount reads the persisted dispense amount.
func (c *Client) GetDispenseAmount(ctx context.Context) (int, error) {
	var payload struct {
		Amount int `json:"amount"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		ForceContentType("application/json").
		Get("/get_dispense_amount")
	if err != nil {
		return 0, fmt.Errorf("get dispense amount: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("get dispense amount: unexpected response %s", resp.Status())
	}
	return payload.Amount, nil
}
