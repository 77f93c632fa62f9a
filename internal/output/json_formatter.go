package output

import (
	"encoding/json"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// JSONFormatter serializes the plan result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
