package domain

import "math"

// Default sweep bounds.
const (
	DefaultSpendingMin  = 50000
	DefaultSpendingMax  = 300000
	DefaultSpendingStep = 1000
	DefaultRows         = 70
)

// DefaultSettings returns the stock sweep bounds.
func DefaultSettings() Settings {
	return Settings{
		SpendingMin:  DefaultSpendingMin,
		SpendingMax:  DefaultSpendingMax,
		SpendingStep: DefaultSpendingStep,
		Rows:         DefaultRows,
	}
}

// WithDefaults fills zero fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.SpendingMin == 0 {
		s.SpendingMin = d.SpendingMin
	}
	if s.SpendingMax == 0 {
		s.SpendingMax = d.SpendingMax
	}
	if s.SpendingStep == 0 {
		s.SpendingStep = d.SpendingStep
	}
	if s.Rows == 0 {
		s.Rows = d.Rows
	}
	return s
}

// AgeSeries returns Rows consecutive ages starting at currentAge.
func (s Settings) AgeSeries(currentAge int) []int {
	if s.Rows <= 0 {
		return []int{}
	}
	ages := make([]int, s.Rows)
	for i := range ages {
		ages[i] = currentAge + i
	}
	return ages
}

// SpendingSeries returns SpendingMin..SpendingMax inclusive in SpendingStep increments.
// Bounds that would not terminate yield an empty series.
func (s Settings) SpendingSeries() []float64 {
	if !(s.SpendingStep > 0) || !(s.SpendingMax >= s.SpendingMin) || math.IsInf(s.SpendingMax, 0) || math.IsInf(s.SpendingMin, 0) {
		return []float64{}
	}
	n := int(math.Floor((s.SpendingMax-s.SpendingMin)/s.SpendingStep+1e-9)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = s.SpendingMin + float64(i)*s.SpendingStep
	}
	return values
}

// ClampSpending coerces v into [SpendingMin, SpendingMax]; non-finite values become SpendingMin.
func (s Settings) ClampSpending(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.SpendingMin
	}
	return math.Min(s.SpendingMax, math.Max(s.SpendingMin, v))
}
