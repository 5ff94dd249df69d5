package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole rounds to whole dollars
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the amount with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole-dollar currency with thousands separators, e.g. $1,250,000.
func (m Money) Format() string {
	s := m.Whole().Decimal.StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + "$" + groupThousands(s)
}

var compactUnits = []struct {
	suffix string
	exp    int32
}{
	{"T", 12},
	{"B", 9},
	{"M", 6},
	{"K", 3},
}

// Compact renders a short whole-unit currency label, e.g. $1M or $894K.
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	for i, u := range compactUnits {
		unit := decimal.New(1, u.exp)
		if abs.LessThan(unit) {
			continue
		}
		scaled := abs.Div(unit).Round(0)
		// 999.6K rounds up into the next unit.
		if i > 0 && scaled.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
			prev := compactUnits[i-1]
			return sign + "$" + abs.Div(decimal.New(1, prev.exp)).Round(0).StringFixed(0) + prev.suffix
		}
		return sign + "$" + scaled.StringFixed(0) + u.suffix
	}
	rounded := abs.Round(0)
	if rounded.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return sign + "$1K"
	}
	return sign + "$" + rounded.StringFixed(0)
}

// FromFloat converts a float result, reporting false for NaN or infinite values.
func FromFloat(v float64) (Money, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{}, false
	}
	return NewMoney(v), true
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
