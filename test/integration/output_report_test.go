package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	engine, err := calculation.NewCalculationEngineWithSettings(cfg.Settings)
	require.NoError(t, err)
	report, err := engine.RunProjection(context.Background(), cfg.Inputs)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range output.AvailableFormatterNames() {
		path := filepath.Join(dir, "report."+output.Extension(name))
		written, err := output.GenerateReport(report, name, path)
		require.NoError(t, err, name)
		require.Equal(t, []string{path}, written)

		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// chart-csv and csv share the extension; the grid export ran last.
	assert.Len(t, lines, 71)
}
