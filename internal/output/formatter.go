package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

// WriteFormatted runs a formatter and writes its output to path. An empty path
// writes a timestamped file in the working directory.
func WriteFormatted(f Formatter, report *domain.Report, path string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = DefaultFilename(f.Name(), time.Now())
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s report: %w", f.Name(), err)
	}
	return path, nil
}

// DefaultFilename names an export after its format, e.g. coastfire-grid_20250101_120000.csv.
func DefaultFilename(format string, at time.Time) string {
	stem := "coastfire-" + format
	if format == "csv" {
		stem = "coastfire-grid"
	}
	return fmt.Sprintf("%s_%s.%s", stem, at.Format("20060102_150405"), Extension(format))
}

// Extension returns the file extension used for a canonical format name.
func Extension(format string) string {
	switch format {
	case "console":
		return "txt"
	case "csv", "chart-csv":
		return "csv"
	default:
		return format
	}
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVGridExporter{},
	ChartCSVExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"grid":        "csv",
	"grid-csv":    "csv",
	"csv-chart":   "chart-csv",
	"chart":       "chart-csv",
	"html-report": "html",
	"json-pretty": "json",
	"pdf-report":  "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
