package output

import (
	"strings"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.PlanResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
}

// GetFormatterByName fetches a registered formatter, or nil when the name is
// unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NormalizeFormatName maps user-facing aliases onto formatter identifiers.
func NormalizeFormatName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "console", "text", "table":
		return "console"
	case "json":
		return "json"
	case "csv", "csv-summary":
		return "csv"
	case "csv-detailed", "csv-rows":
		return "csv-detailed"
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// AvailableFormatterNames lists the registered formatter identifiers.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}
