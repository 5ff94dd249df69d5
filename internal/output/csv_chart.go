package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// ChartCSVExporter writes the per-age chart series for the configured spending level.
type ChartCSVExporter struct{}

func (c ChartCSVExporter) Name() string { return "chart-csv" }

func (c ChartCSVExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "RequiredToday", "CurrentAssets", "Coasting", "Target"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, pt := range report.Chart.Points {
		row := []string{
			intToString(pt.Age),
			FormatFixed(pt.RequiredToday),
			FormatFixed(pt.CurrentAssets),
			FormatFixed(pt.Coasting),
			FormatFixed(pt.Target),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
