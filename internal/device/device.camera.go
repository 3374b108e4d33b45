// FilePath: internal/device/device.camera.go
package device

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CameraClient triggers captures on the optional camera module. The
// camera uploads its pictures to the log service on its own; all we do
// here is poke it at the right moments.
type CameraClient struct {
	http *resty.Client
}

// NewCamera creates a camera client for the given base URL.
func NewCamera(baseURL string, timeout time.Duration) *CameraClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &CameraClient{http: httpClient}
}

// TriggerCapture asks the camera to take and upload one picture.
func (c *CameraClient) TriggerCapture(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/trigger_capture")
	if err != nil {
		return fmt.Errorf("camera capture: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("camera capture: unexpected response %s", resp.Status())
	}
	return nil
}
