package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes the report in the named format and returns the written path.
// "all" writes the grid CSV, the chart CSV and the HTML report with default names.
func GenerateReport(report *domain.Report, format, path string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range []string{"csv", "chart-csv", "html"} {
			p, err := WriteFormatted(GetFormatterByName(name), report, "")
			if err != nil {
				return written, err
			}
			written = append(written, p)
		}
		return written, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	p, err := WriteFormatted(f, report, path)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}
