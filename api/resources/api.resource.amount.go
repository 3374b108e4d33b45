// FilePath: api/resources/api.resource.amount.go
package resources

import (
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/hubservice"
	"github.com/animalhaven/feederhub/internal/models"
)

// AmountHandlers encapsulates the dispense-amount HTTP handlers
type AmountHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Current dispense amount
// @Tags amount
// @Produce json
// @Success 200 {object} map[string]int
// @Router /amount [get]
func (h *AmountHandlers) GetAmount(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]int{"amount_g": h.hubservice.Amount()})
}

// @Summary Set the dispense amount
// @Description Replace the amount; the value is rounded to steps of 50 and clamped into 50-500. Non-numeric input changes nothing.
// @Tags amount
// @Accept x-www-form-urlencoded
// @Produce json
// @Param amount_g formData int true "Requested amount in grams"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errors.APIError
// @Router /amount [put]
func (h *AmountHandlers) SetAmount(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req models.AmountRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("amount_g must be a number", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"amount_g": h.hubservice.SetAmount(req.AmountG)})
}

// @Summary Increase the dispense amount by one step
// @Tags amount
// @Produce json
// @Success 200 {object} map[string]int
// @Router /amount/increase [post]
func (h *AmountHandlers) Increase(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]int{"amount_g": h.hubservice.IncreaseAmount()})
}

// @Summary Decrease the dispense amount by one step
// @Tags amount
// @Produce json
// @Success 200 {object} map[string]int
// @Router /amount/decrease [post]
func (h *AmountHandlers) Decrease(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]int{"amount_g": h.hubservice.DecreaseAmount()})
}
