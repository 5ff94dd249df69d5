package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 50000.0, s.SpendingMin)
	assert.Equal(t, 300000.0, s.SpendingMax)
	assert.Equal(t, 1000.0, s.SpendingStep)
	assert.Equal(t, 70, s.Rows)
}

func TestSettings_WithDefaults(t *testing.T) {
	s := Settings{SpendingMax: 80000, Rows: 10}.WithDefaults()
	assert.Equal(t, Settings{SpendingMin: 50000, SpendingMax: 80000, SpendingStep: 1000, Rows: 10}, s)
	assert.Equal(t, DefaultSettings(), Settings{}.WithDefaults())
}

func TestSettings_AgeSeries(t *testing.T) {
	ages := DefaultSettings().AgeSeries(30)
	assert.Len(t, ages, 70)
	assert.Equal(t, 30, ages[0])
	assert.Equal(t, 99, ages[69])
	assert.Empty(t, Settings{Rows: 0}.AgeSeries(30))
	assert.Empty(t, Settings{Rows: -4}.AgeSeries(30))
}

func TestSettings_SpendingSeries(t *testing.T) {
	series := DefaultSettings().SpendingSeries()
	assert.Len(t, series, 251)
	assert.Equal(t, 50000.0, series[0])
	assert.Equal(t, 51000.0, series[1])
	assert.Equal(t, 300000.0, series[250])

	// A step that does not divide the range stops at the last value <= max.
	assert.Equal(t, []float64{100, 175, 250}, Settings{SpendingMin: 100, SpendingMax: 300, SpendingStep: 75}.SpendingSeries())
	// Fractional steps do not drift past max.
	assert.Len(t, Settings{SpendingMin: 0, SpendingMax: 1, SpendingStep: 0.1}.SpendingSeries(), 11)

	assert.Empty(t, Settings{SpendingMin: 10, SpendingMax: 20, SpendingStep: 0}.SpendingSeries())
	assert.Empty(t, Settings{SpendingMin: 30, SpendingMax: 20, SpendingStep: 1}.SpendingSeries())
	assert.Empty(t, Settings{SpendingMin: 0, SpendingMax: math.Inf(1), SpendingStep: 1}.SpendingSeries())
}

func TestSettings_ClampSpending(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 50000.0, s.ClampSpending(10))
	assert.Equal(t, 300000.0, s.ClampSpending(1e9))
	assert.Equal(t, 123456.0, s.ClampSpending(123456))
	assert.Equal(t, 50000.0, s.ClampSpending(math.NaN()))
	assert.Equal(t, 50000.0, s.ClampSpending(math.Inf(1)))
	assert.Equal(t, 50000.0, s.ClampSpending(math.Inf(-1)))
}
