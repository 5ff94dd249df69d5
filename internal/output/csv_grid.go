package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// CSVGridExporter writes the age x spending grid of required assets today.
// Undefined cells are written as empty fields.
type CSVGridExporter struct{}

func (c CSVGridExporter) Name() string { return "csv" }

func (c CSVGridExporter) Format(report *domain.Report) ([]byte, error) {
	if report.Grid == nil {
		return nil, fmt.Errorf("csv: report has no grid")
	}
	grid := report.Grid
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, len(grid.Spending)+1)
	header = append(header, "Retirement Age")
	for _, s := range grid.Spending {
		header = append(header, spendingHeader(s))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range grid.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, intToString(row.Age))
		for _, cell := range row.Cells {
			record = append(record, FormatFixed(cell))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
