package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/output"
)

func sampleReport() *domain.Report {
	coast := 50
	return &domain.Report{
		Inputs:   domain.Inputs{CurrentAssets: 400000, CurrentAge: 49, SWR: 0.04, ReturnRate: 0.1, Inflation: 0.04, Spending: 50000},
		Settings: domain.Settings{SpendingMin: 50000, SpendingMax: 50000, SpendingStep: 1000, Rows: 2},
		Target:   domain.Amount{Value: 1250000, Valid: true},
		CoastAge: &coast,
		Chart: domain.ChartSeries{Spending: 50000, Points: []domain.ChartPoint{
			{Age: 49, RequiredToday: domain.Amount{Value: 1250000, Valid: true}, CurrentAssets: domain.Amount{Value: 400000, Valid: true}, Coasting: domain.Amount{Value: 400000, Valid: true}, Target: domain.Amount{Value: 1250000, Valid: true}},
			{Age: 50, RequiredToday: domain.Amount{Value: 1179245.28, Valid: true}, CurrentAssets: domain.Amount{Value: 400000, Valid: true}, Coasting: domain.Amount{Value: 424000, Valid: true}, Target: domain.Amount{Value: 1250000, Valid: true}},
		}},
		Grid: &domain.Grid{
			Ages:     []int{49, 50},
			Spending: []float64{50000},
			Rows: []domain.GridRow{
				{Age: 49, Cells: []domain.Amount{{Value: 1250000, Valid: true}}},
				{Age: 50, Cells: []domain.Amount{{}}},
			},
		},
		GeneratedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateReport_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.csv")
	written, err := output.GenerateReport(sampleReport(), "grid", path)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if len(written) != 1 || written[0] != path {
		t.Fatalf("unexpected written paths %v", written)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := "Retirement Age,50000\n49,1250000.00\n50,\n"; string(data) != want {
		t.Fatalf("grid csv = %q, want %q", data, want)
	}
}

func TestGenerateReport_All(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	written, err := output.GenerateReport(sampleReport(), "all", "")
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 files, got %v", written)
	}
	for i, prefix := range []string{"coastfire-grid_", "coastfire-chart-csv_", "coastfire-html_"} {
		if !strings.HasPrefix(written[i], prefix) {
			t.Fatalf("file %d = %q, want prefix %q", i, written[i], prefix)
		}
		if _, err := os.Stat(written[i]); err != nil {
			t.Fatalf("stat %s: %v", written[i], err)
		}
	}
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := output.GenerateReport(sampleReport(), "xlsx", "")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "Try one of: chart-csv, console, csv, html, json, pdf") {
		t.Fatalf("expected format list in error, got %v", err)
	}
}

func TestWriteFormatted_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if _, err := output.WriteFormatted(output.JSONFormatter{}, sampleReport(), path); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}
