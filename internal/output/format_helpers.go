package output

import (
	"strconv"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
)

// Placeholder shown wherever a projection is undefined.
const Placeholder = "-"

// FormatCurrency formats a dollar figure as whole-dollar USD, e.g. $1,250,000.
func FormatCurrency(v float64) string {
	m, ok := decimal.FromFloat(v)
	if !ok {
		return Placeholder
	}
	return m.Format()
}

// FormatAmount formats a possibly undefined amount, using Placeholder when undefined.
func FormatAmount(a domain.Amount) string {
	if !a.Valid {
		return Placeholder
	}
	return FormatCurrency(a.Value)
}

// FormatCompact formats a possibly undefined amount in short form, e.g. $894K.
func FormatCompact(a domain.Amount) string {
	if !a.Valid {
		return Placeholder
	}
	m, ok := decimal.FromFloat(a.Value)
	if !ok {
		return Placeholder
	}
	return m.Compact()
}

// FormatFixed renders a CSV field with two decimals; undefined amounts become an empty field.
func FormatFixed(a domain.Amount) string {
	if !a.Valid {
		return ""
	}
	m, ok := decimal.FromFloat(a.Value)
	if !ok {
		return ""
	}
	return m.Round().String()
}

// FormatPercentage formats a fraction (0.04) as a percentage with 2 decimals (4.00%).
func FormatPercentage(fraction float64) string {
	m, ok := decimal.FromFloat(fraction * 100)
	if !ok {
		return Placeholder
	}
	return m.Decimal.StringFixed(2) + "%"
}

// FormatCoastAge renders the coast age for display.
func FormatCoastAge(age *int) string {
	if age == nil {
		return "Not in range"
	}
	return "Age " + intToString(*age)
}

func intToString(i int) string { return strconv.Itoa(i) }

func spendingHeader(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
