// FilePath: api/resources/api.resource.logs.go
package resources

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/hubservice"
	"github.com/animalhaven/feederhub/internal/models"
)

// LogHandlers encapsulates the feeding-log HTTP handlers
type LogHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Current log panel
// @Description Visible log views, view options and stats, without touching the upstream
// @Tags logs
// @Produce json
// @Success 200 {object} models.LogbookState
// @Router /logs [get]
func (h *LogHandlers) GetLogbook(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hubservice.Logbook())
}

// @Summary Reload the feeding history
// @Description Fetch the full history from the log service and rebuild all views
// @Tags logs
// @Produce json
// @Success 200 {object} models.LogbookState
// @Failure 502 {object} errors.APIError
// @Router /logs/refresh [post]
func (h *LogHandlers) RefreshLogs(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	state, err := h.hubservice.RefreshLogs(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to load feeding logs").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, state)
}

// @Summary Change the log view
// @Description Apply filter range and pagination changes on the already-loaded set; never refetches
// @Tags logs
// @Accept x-www-form-urlencoded
// @Produce json
// @Param range formData string false "Calendar range: today or week"
// @Param expanded formData bool false "Show all entries instead of the first page"
// @Success 200 {object} models.LogbookState
// @Failure 400 {object} errors.APIError
// @Router /logs/view [put]
func (h *LogHandlers) UpdateView(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req models.LogViewRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	var rng *models.LogRange
	if req.Range != "" {
		lr := models.LogRange(req.Range)
		if !lr.Valid() {
			respondWithError(w, errors.NewValidationError("log range must be today or week", nil).WithRequestID(requestID))
			return
		}
		rng = &lr
	}

	respondWithJSON(w, http.StatusOK, h.hubservice.SetLogView(rng, req.Expanded))
}

// @Summary Delete one log entry
// @Description Prune the entry locally, then delete it upstream; the prune survives an upstream failure
// @Tags logs
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.LogbookState
// @Failure 400 {object} errors.APIError
// @Failure 502 {object} errors.APIError
// @Router /logs/{id} [delete]
func (h *LogHandlers) DeleteLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid log id", err).WithRequestID(requestID))
		return
	}

	state, err := h.hubservice.DeleteLog(r.Context(), id)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to delete log entry").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, state)
}

// @Summary Clear the feeding history
// @Description Clear local state, then the upstream history; local state survives an upstream failure
// @Tags logs
// @Produce json
// @Success 200 {object} models.LogbookState
// @Failure 502 {object} errors.APIError
// @Router /logs [delete]
func (h *LogHandlers) DeleteAllLogs(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	state, err := h.hubservice.DeleteAllLogs(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to clear feeding history").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, state)
}
