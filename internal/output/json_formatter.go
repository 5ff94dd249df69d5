package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
// Undefined amounts encode as null.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
