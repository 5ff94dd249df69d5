package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
)

// ErrInvalidSettings is returned when sweep bounds cannot produce a table.
var ErrInvalidSettings = errors.New("invalid projection settings")

// Warning messages shown alongside a report whose inputs make projections undefined.
const (
	WarnSWR    = "Safe withdrawal rate must be greater than 0."
	WarnGrowth = "Return minus inflation must be greater than -1 (so growth stays positive)."
)

// CalculationEngine runs projection sweeps over a fixed set of sweep bounds.
type CalculationEngine struct {
	Settings domain.Settings
	Workers  int // grid rows computed concurrently; <= 0 means runtime.NumCPU()
	Logger   Logger
}

// NewCalculationEngine creates an engine with the default sweep bounds.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Settings: domain.DefaultSettings(),
		Logger:   NopLogger{},
	}
}

// NewCalculationEngineWithSettings creates an engine with custom sweep bounds.
func NewCalculationEngineWithSettings(s domain.Settings) (*CalculationEngine, error) {
	s = s.WithDefaults()
	if err := ValidateSettings(s); err != nil {
		return nil, err
	}
	ce := NewCalculationEngine()
	ce.Settings = s
	return ce, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ValidateSettings rejects bounds that would produce an empty or endless sweep.
func ValidateSettings(s domain.Settings) error {
	if s.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidSettings, s.Rows)
	}
	if !(s.SpendingStep > 0) || math.IsInf(s.SpendingStep, 0) {
		return fmt.Errorf("%w: spending step must be positive, got %v", ErrInvalidSettings, s.SpendingStep)
	}
	if math.IsNaN(s.SpendingMin) || math.IsNaN(s.SpendingMax) || math.IsInf(s.SpendingMin, 0) || math.IsInf(s.SpendingMax, 0) {
		return fmt.Errorf("%w: spending bounds must be finite", ErrInvalidSettings)
	}
	if s.SpendingMin > s.SpendingMax {
		return fmt.Errorf("%w: spending min %v exceeds max %v", ErrInvalidSettings, s.SpendingMin, s.SpendingMax)
	}
	return nil
}

// FindCoastAge scans the engine's age span.
func (ce *CalculationEngine) FindCoastAge(p domain.Params) (int, bool) {
	return FindCoastAgeIn(ce.Settings.AgeSeries(p.CurrentAge), p)
}

// Warnings lists the input problems that make every projection undefined.
func Warnings(in domain.Inputs) []string {
	var warnings []string
	if !(in.SWR > 0) {
		warnings = append(warnings, WarnSWR)
	}
	if !(1+in.ReturnRate-in.Inflation > 0) {
		warnings = append(warnings, WarnGrowth)
	}
	return warnings
}

// BuildChart evaluates the display series at the configured spending level.
func (ce *CalculationEngine) BuildChart(in domain.Inputs) domain.ChartSeries {
	ages := ce.Settings.AgeSeries(in.CurrentAge)
	target := domain.NewAmount(PerpetualTarget(in.Params(in.CurrentAge)))
	points := make([]domain.ChartPoint, len(ages))
	for i, age := range ages {
		p := in.Params(age)
		points[i] = domain.ChartPoint{
			Age:           age,
			RequiredToday: domain.NewAmount(RequiredAssets(p)),
			CurrentAssets: domain.FiniteAmount(in.CurrentAssets),
			Coasting:      domain.NewAmount(CoastingAssets(p)),
			Target:        target,
		}
	}
	return domain.ChartSeries{Spending: in.Spending, Points: points}
}

// BuildGrid computes required assets today for every (age, spending) cell.
// Rows are independent and computed concurrently; the result is identical to a sequential sweep.
func (ce *CalculationEngine) BuildGrid(ctx context.Context, in domain.Inputs) (*domain.Grid, error) {
	if err := ValidateSettings(ce.Settings); err != nil {
		return nil, err
	}
	ages := ce.Settings.AgeSeries(in.CurrentAge)
	spending := ce.Settings.SpendingSeries()
	rows := make([]domain.GridRow, len(ages))

	workers := ce.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)
	invalid := make([]int, len(ages))

	for i, age := range ages {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("grid sweep cancelled at age %d: %w", age, err)
		}
		wg.Add(1)
		semaphore <- struct{}{}
		go func(rowIndex, age int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			cells := make([]domain.Amount, len(spending))
			for j, s := range spending {
				cells[j] = domain.NewAmount(RequiredAssets(in.Params(age).WithSpending(s)))
				if !cells[j].Valid {
					invalid[rowIndex]++
				}
			}
			rows[rowIndex] = domain.GridRow{Age: age, Cells: cells}
		}(i, age)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("grid sweep cancelled: %w", err)
	}

	total := 0
	for _, n := range invalid {
		total += n
	}
	if total > 0 {
		ce.Logger.Debugf("grid: %d of %d cells undefined", total, len(ages)*len(spending))
	}

	return &domain.Grid{Ages: ages, Spending: spending, Rows: rows}, nil
}

// RunProjection builds the complete report for one set of inputs.
// Undefined projections are reported through warnings and invalid amounts, not errors.
func (ce *CalculationEngine) RunProjection(ctx context.Context, in domain.Inputs) (*domain.Report, error) {
	grid, err := ce.BuildGrid(ctx, in)
	if err != nil {
		return nil, err
	}

	base := in.Params(in.CurrentAge)
	report := &domain.Report{
		Inputs:       in,
		Settings:     ce.Settings,
		GrowthFactor: domain.FiniteAmount(base.GrowthFactor()),
		Target:       domain.NewAmount(PerpetualTarget(base)),
		Warnings:     Warnings(in),
		Chart:        ce.BuildChart(in),
		Grid:         grid,
		GeneratedAt:  nowFunc(),
	}
	if age, ok := ce.FindCoastAge(base); ok {
		report.CoastAge = &age
		if in.BirthDate != nil {
			year := dateutil.YearReachingAge(*in.BirthDate, age)
			report.CoastYear = &year
		}
	}

	for _, w := range report.Warnings {
		ce.Logger.Warnf("projection: %s", w)
	}
	if report.CoastAge != nil {
		ce.Logger.Infof("projection: coast age %d (assets %.2f, spending %.2f)", *report.CoastAge, in.CurrentAssets, in.Spending)
	} else {
		ce.Logger.Infof("projection: no coast age within %d years", ce.Settings.Rows)
	}
	return report, nil
}
