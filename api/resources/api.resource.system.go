// FilePath: api/resources/api.resource.system.go
package resources

import (
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/hubservice"
)

// SystemHandlers encapsulates health and service-level handlers
type SystemHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Service health
// @Description Health of the hub itself plus the reachability of its collaborators
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	settings := "ok"
	if err := h.hubservice.Ping(r.Context()); err != nil {
		// the hub keeps serving cached state without its settings store
		status = "degraded"
		settings = err.Error()
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":           status,
		"version":          nuts.GetVersion(),
		"device_available": h.hubservice.LiveState().Available,
		"settings_store":   settings,
	})
}
