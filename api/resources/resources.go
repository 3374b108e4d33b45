// FilePath: api/resources/resources.go
package resources

import (
	"github.com/animalhaven/feederhub/internal/hubservice"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Feeder *FeederHandlers
	Logs   *LogHandlers
	Amount *AmountHandlers
	System *SystemHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService) *Resources {
	return &Resources{
		Feeder: &FeederHandlers{hubservice: svc},
		Logs:   &LogHandlers{hubservice: svc},
		Amount: &AmountHandlers{hubservice: svc},
		System: &SystemHandlers{hubservice: svc},
	}
}
