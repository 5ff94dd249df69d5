package calculation

import (
	"math"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// boundaryTolerance is the relative distance from the target inside which the
// future-value comparison defers to the required-today comparison.
const boundaryTolerance = 1e-9

// FindCoastAge returns the first age in the default span at which current
// assets cover the required assets for that age. The search stops with no
// result at the first undefined evaluation instead of skipping it.
func FindCoastAge(p domain.Params) (int, bool) {
	return FindCoastAgeIn(BuildAgeSeries(p.CurrentAge), p)
}

// FindCoastAgeIn runs the required-today comparison over an explicit age span.
func FindCoastAgeIn(ages []int, p domain.Params) (int, bool) {
	for _, age := range ages {
		need, ok := RequiredAssets(p.WithRetirementAge(age))
		if !ok {
			return 0, false
		}
		if p.CurrentAssets >= need {
			return age, true
		}
	}
	return 0, false
}

// FindCoastAgeByFutureValue answers the same question by growing current
// assets forward and comparing against the perpetual target.
func FindCoastAgeByFutureValue(p domain.Params) (int, bool) {
	return FindCoastAgeByFutureValueIn(BuildAgeSeries(p.CurrentAge), p)
}

// FindCoastAgeByFutureValueIn is FindCoastAgeByFutureValue over an explicit age span.
// It is undefined at exactly the ages RequiredAssets is, and returns the same age
// as FindCoastAgeIn for every input.
func FindCoastAgeByFutureValueIn(ages []int, p domain.Params) (int, bool) {
	target, ok := PerpetualTarget(p)
	if !ok {
		return 0, false
	}
	for _, age := range ages {
		pa := p.WithRetirementAge(age)
		need, ok := RequiredAssets(pa)
		if !ok {
			return 0, false
		}
		if meetsTarget(pa, target, need) {
			return age, true
		}
	}
	return 0, false
}

// meetsTarget reports whether p.CurrentAssets grown to p.RetirementAge reaches
// target. need is RequiredAssets(p), used to settle values on the boundary.
func meetsTarget(p domain.Params, target, need float64) bool {
	growth := math.Pow(p.GrowthFactor(), float64(p.Years()))
	if math.IsInf(growth, 1) {
		// Any non-negative balance grows past a finite target; need is 0 here.
		return p.CurrentAssets >= need
	}
	fv := p.CurrentAssets * growth
	if math.Abs(fv-target) <= boundaryTolerance*math.Abs(target) {
		return p.CurrentAssets >= need
	}
	return fv >= target
}
