package calculation

import (
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// RequiredAssets returns the capital needed today so that, compounding at the
// real growth factor until p.RetirementAge, it reaches the perpetual-withdrawal
// target Spending / SWR. The bool is false when the projection is undefined
// (growth factor <= 0, SWR <= 0, or a non-finite input).
func RequiredAssets(p domain.Params) (float64, bool) {
	g := p.GrowthFactor()
	if !(g > 0) || !(p.SWR > 0) {
		return 0, false
	}
	v := (p.Spending / p.SWR) / math.Pow(g, float64(p.Years()))
	return finite(v)
}

// CoastingAssets returns the future value of p.CurrentAssets at p.RetirementAge
// with no further contributions. A negative horizon discounts backwards.
func CoastingAssets(p domain.Params) (float64, bool) {
	g := p.GrowthFactor()
	if !(g > 0) {
		return 0, false
	}
	return finite(p.CurrentAssets * math.Pow(g, float64(p.Years())))
}

// PerpetualTarget is the nest egg that sustains Spending forever at SWR.
func PerpetualTarget(p domain.Params) (float64, bool) {
	if !(p.SWR > 0) {
		return 0, false
	}
	return finite(p.Spending / p.SWR)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseNumber converts raw user input. Blank input is zero; anything
// unparseable is NaN so it surfaces as an undefined projection downstream.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// BuildAgeSeries returns the default span of candidate retirement ages.
func BuildAgeSeries(currentAge int) []int {
	return domain.DefaultSettings().AgeSeries(currentAge)
}

// BuildSpendingSeries returns the default spending columns.
func BuildSpendingSeries() []float64 {
	return domain.DefaultSettings().SpendingSeries()
}

// ClampSpending clamps v into the default spending range.
func ClampSpending(v float64) float64 {
	return domain.DefaultSettings().ClampSpending(v)
}

// ClampSpendingString parses raw input and clamps it into the default spending range.
func ClampSpendingString(raw string) float64 {
	return ClampSpending(ParseNumber(raw))
}
