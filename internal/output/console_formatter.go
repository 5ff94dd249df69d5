package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console summary and a grid excerpt.
type ConsoleFormatter struct {
	// MaxColumns limits the spending columns shown; zero means 6.
	MaxColumns int
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	in := report.Inputs
	fmt.Fprintln(&buf, "COASTFIRE PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Current Assets:   %s\n", FormatCurrency(in.CurrentAssets))
	fmt.Fprintf(&buf, "Annual Spending:  %s\n", FormatCurrency(in.Spending))
	fmt.Fprintf(&buf, "Current Age:      %d\n", in.CurrentAge)
	fmt.Fprintf(&buf, "SWR:              %s\n", FormatPercentage(in.SWR))
	fmt.Fprintf(&buf, "Return/Inflation: %s / %s\n", FormatPercentage(in.ReturnRate), FormatPercentage(in.Inflation))
	fmt.Fprintf(&buf, "Target Nest Egg:  %s\n", FormatAmount(report.Target))
	fmt.Fprintf(&buf, "Coast Age:        %s", FormatCoastAge(report.CoastAge))
	if report.CoastYear != nil {
		fmt.Fprintf(&buf, " (%d)", *report.CoastYear)
	}
	fmt.Fprintln(&buf)

	if len(report.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Warnings: %s\n", strings.Join(report.Warnings, " "))
	}

	if report.Grid == nil || len(report.Grid.Rows) == 0 {
		return buf.Bytes(), nil
	}

	maxCols := c.MaxColumns
	if maxCols <= 0 {
		maxCols = 6
	}
	cols := sampleColumns(len(report.Grid.Spending), maxCols)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Required assets today by retirement age and annual spending")
	fmt.Fprintf(&buf, "%-6s", "Age")
	for _, j := range cols {
		fmt.Fprintf(&buf, " %10s", FormatCompact(domain.Amount{Value: report.Grid.Spending[j], Valid: true}))
	}
	fmt.Fprintln(&buf)
	for i, row := range report.Grid.Rows {
		if i%5 != 0 && i != len(report.Grid.Rows)-1 {
			continue
		}
		fmt.Fprintf(&buf, "%-6d", row.Age)
		for _, j := range cols {
			fmt.Fprintf(&buf, " %10s", FormatCompact(row.Cells[j]))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}

// sampleColumns picks up to limit evenly spaced indices from [0, n), always including both ends.
func sampleColumns(n, limit int) []int {
	if n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if limit == 1 {
		return []int{0}
	}
	idx := make([]int, limit)
	for i := range idx {
		idx[i] = i * (n - 1) / (limit - 1)
	}
	return idx
}
