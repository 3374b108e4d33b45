// FilePath: api/resources/api.resource.feeder.go
package resources

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/hubservice"
	"github.com/animalhaven/feederhub/internal/models"
)

// FeederHandlers encapsulates the live-state and feeding HTTP handlers
type FeederHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Live feeder state
// @Description Current availability, last known status snapshot and the estimated hopper capacity
// @Tags feeder
// @Produce json
// @Success 200 {object} models.FeederLiveState
// @Router /feeder/status [get]
func (h *FeederHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hubservice.LiveState())
}

// @Summary Trigger a feeding
// @Description Dispatch one dispensing run; without an amount the current dispense amount is used
// @Tags feeder
// @Accept x-www-form-urlencoded
// @Produce json
// @Param amount_g formData int false "Amount in grams, quantized to steps of 50"
// @Success 202 {object} map[string]int
// @Failure 400 {object} errors.APIError
// @Failure 502 {object} errors.APIError
// @Router /feeder/feed [post]
func (h *FeederHandlers) TriggerFeed(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req models.FeedRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	grams, err := h.hubservice.TriggerFeeding(r.Context(), req.AmountG)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to trigger feeding").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusAccepted, map[string]int{"amount_g": grams})
}

// @Summary Program a schedule slot
// @Description Validate a schedule slot and forward it to the device
// @Tags feeder
// @Accept x-www-form-urlencoded
// @Produce json
// @Param slot formData int false "Schedule slot index"
// @Param hour formData int true "Hour, 0-23"
// @Param minute formData int true "Minute, 0-59"
// @Param amount_g formData int true "Amount in grams, quantized to steps of 50"
// @Param enabled formData bool false "Whether the slot is active"
// @Success 204 "No Content"
// @Failure 400 {object} errors.APIError
// @Failure 502 {object} errors.APIError
// @Router /feeder/schedule [post]
func (h *FeederHandlers) SetSchedule(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req models.ScheduleRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	sched := models.FeedingSchedule{
		Slot:    req.Slot,
		Hour:    req.Hour,
		Minute:  req.Minute,
		AmountG: req.AmountG,
		Enabled: req.Enabled,
	}
	if err := h.hubservice.SetSchedule(r.Context(), sched); err != nil {
		respondWithError(w, asAPIError(err, "failed to set schedule").WithRequestID(requestID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper functions

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeForm parses a classic form encoding into dst.
func decodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

// asAPIError passes typed service errors through and wraps anything else
// as internal, so handlers never flatten a 4xx into a 500.
func asAPIError(err error, fallback string) *errors.APIError {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return errors.NewInternalError(fallback, err)
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
