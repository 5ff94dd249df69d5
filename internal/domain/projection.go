package domain

import (
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// Params is the parameter record every projection formula consumes.
type Params struct {
	CurrentAssets float64 `json:"current_assets" yaml:"current_assets"`
	CurrentAge    int     `json:"current_age" yaml:"current_age"`
	RetirementAge int     `json:"retirement_age" yaml:"retirement_age"`
	Spending      float64 `json:"spending" yaml:"spending"`
	SWR           float64 `json:"swr" yaml:"swr"`
	ReturnRate    float64 `json:"return_rate" yaml:"return_rate"`
	Inflation     float64 `json:"inflation" yaml:"inflation"`
}

// GrowthFactor returns the real (inflation adjusted) one-year compounding multiplier.
func (p Params) GrowthFactor() float64 {
	return 1 + p.ReturnRate - p.Inflation
}

// Years returns the compounding horizon; negative when retirement precedes the current age.
func (p Params) Years() int {
	return p.RetirementAge - p.CurrentAge
}

// WithRetirementAge returns a copy of p evaluated at a different retirement age.
func (p Params) WithRetirementAge(age int) Params {
	p.RetirementAge = age
	return p
}

// WithSpending returns a copy of p with a different spending level.
func (p Params) WithSpending(spending float64) Params {
	p.Spending = spending
	return p
}

// Amount is a projected dollar figure that may be undefined.
// Undefined amounts are never substituted with zero.
type Amount struct {
	Value float64
	Valid bool
}

// NewAmount wraps a comma-ok result.
func NewAmount(v float64, ok bool) Amount {
	if !ok {
		return Amount{}
	}
	return Amount{Value: v, Valid: true}
}

// FiniteAmount wraps v, marking NaN and infinities as undefined.
func FiniteAmount(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return Amount{Value: v, Valid: true}
}

// MarshalJSON encodes invalid amounts as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid || math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, a.Value, 'f', -1, 64), nil
}

// UnmarshalJSON accepts a number or null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Amount{}
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*a = Amount{Value: v, Valid: true}
	return nil
}

// Inputs holds the user-supplied values a report is built from.
type Inputs struct {
	CurrentAssets float64    `json:"current_assets" yaml:"current_assets"`
	CurrentAge    int        `json:"current_age" yaml:"current_age"`
	BirthDate     *time.Time `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	SWR           float64    `json:"swr" yaml:"swr"`
	ReturnRate    float64    `json:"return_rate" yaml:"return_rate"`
	Inflation     float64    `json:"inflation" yaml:"inflation"`
	Spending      float64    `json:"spending" yaml:"spending"`
}

// MarshalJSON encodes non-finite values (from unparseable raw input) as null.
func (in Inputs) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CurrentAssets Amount     `json:"current_assets"`
		CurrentAge    int        `json:"current_age"`
		BirthDate     *time.Time `json:"birth_date,omitempty"`
		SWR           Amount     `json:"swr"`
		ReturnRate    Amount     `json:"return_rate"`
		Inflation     Amount     `json:"inflation"`
		Spending      Amount     `json:"spending"`
	}{
		CurrentAssets: FiniteAmount(in.CurrentAssets),
		CurrentAge:    in.CurrentAge,
		BirthDate:     in.BirthDate,
		SWR:           FiniteAmount(in.SWR),
		ReturnRate:    FiniteAmount(in.ReturnRate),
		Inflation:     FiniteAmount(in.Inflation),
		Spending:      FiniteAmount(in.Spending),
	})
}

// Params builds the parameter record for one retirement age.
func (in Inputs) Params(retirementAge int) Params {
	return Params{
		CurrentAssets: in.CurrentAssets,
		CurrentAge:    in.CurrentAge,
		RetirementAge: retirementAge,
		Spending:      in.Spending,
		SWR:           in.SWR,
		ReturnRate:    in.ReturnRate,
		Inflation:     in.Inflation,
	}
}

// Settings are the sweep bounds shared by the grid, chart and input clamping.
type Settings struct {
	SpendingMin  float64 `json:"spending_min" yaml:"spending_min"`
	SpendingMax  float64 `json:"spending_max" yaml:"spending_max"`
	SpendingStep float64 `json:"spending_step" yaml:"spending_step"`
	Rows         int     `json:"rows" yaml:"rows"`
}

// Configuration is the on-disk shape of a projection request.
type Configuration struct {
	Inputs   Inputs   `json:"inputs" yaml:"inputs"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// GridRow is one retirement age across every spending column.
type GridRow struct {
	Age   int      `json:"age"`
	Cells []Amount `json:"cells"`
}

// Grid is the age x spending table of required assets today.
type Grid struct {
	Ages     []int     `json:"ages"`
	Spending []float64 `json:"spending"`
	Rows     []GridRow `json:"rows"`
}

// ChartPoint is one age on the chart series.
type ChartPoint struct {
	Age           int    `json:"age"`
	RequiredToday Amount `json:"required_today"`
	CurrentAssets Amount `json:"current_assets"`
	Coasting      Amount `json:"coasting"`
	Target        Amount `json:"target"`
}

// ChartSeries holds the display series for the configured spending level.
type ChartSeries struct {
	Spending float64      `json:"spending"`
	Points   []ChartPoint `json:"points"`
}

// Report is the full result handed to output formatters.
type Report struct {
	Inputs       Inputs      `json:"inputs"`
	Settings     Settings    `json:"settings"`
	GrowthFactor Amount      `json:"growth_factor"`
	Target       Amount      `json:"target"`
	CoastAge     *int        `json:"coast_age"`
	CoastYear    *int        `json:"coast_year,omitempty"`
	Warnings     []string    `json:"warnings"`
	Chart        ChartSeries `json:"chart"`
	Grid         *Grid       `json:"grid,omitempty"`
	GeneratedAt  time.Time   `json:"generated_at"`
}
