package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
)

func TestExampleConfigProjection(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	engine, err := calculation.NewCalculationEngineWithSettings(cfg.Settings)
	require.NoError(t, err)
	report, err := engine.RunProjection(context.Background(), cfg.Inputs)
	require.NoError(t, err)

	require.NotNil(t, report.CoastAge)
	assert.Equal(t, 50, *report.CoastAge)
	assert.Empty(t, report.Warnings)
	assert.InDelta(t, 1250000, report.Target.Value, 1e-6)

	require.NotNil(t, report.Grid)
	assert.Len(t, report.Grid.Rows, 70)
	assert.Len(t, report.Grid.Spending, 251)
	assert.Len(t, report.Chart.Points, 70)

	// Row for age 45 at the 50000 column: 1,250,000 / 1.06^15.
	row := report.Grid.Rows[15]
	assert.Equal(t, 45, row.Age)
	assert.InDelta(t, 521581.33, row.Cells[0].Value, 0.01)
}

func TestStrategiesAgreeOnExampleConfig(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	for _, assets := range []float64{0, 50000, 150000, 400000, 900000, 1300000} {
		in := cfg.Inputs
		in.CurrentAssets = assets
		p := in.Params(in.CurrentAge)
		a1, ok1 := calculation.FindCoastAge(p)
		a2, ok2 := calculation.FindCoastAgeByFutureValue(p)
		assert.Equal(t, ok1, ok2, "assets %v", assets)
		assert.Equal(t, a1, a2, "assets %v", assets)
	}
}

func TestUndefinedGrowthConfig(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/undefined_growth.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunProjection(context.Background(), cfg.Inputs)
	require.NoError(t, err)

	assert.Nil(t, report.CoastAge)
	assert.Equal(t, []string{calculation.WarnGrowth}, report.Warnings)
	// The perpetual target only depends on SWR.
	assert.True(t, report.Target.Valid)
	for _, row := range report.Grid.Rows {
		for _, cell := range row.Cells {
			require.False(t, cell.Valid)
		}
	}
	for _, pt := range report.Chart.Points {
		assert.False(t, pt.RequiredToday.Valid)
		assert.False(t, pt.Coasting.Valid)
	}
}
