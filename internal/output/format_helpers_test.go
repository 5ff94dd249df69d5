//go:build unit

package output

import (
	"math"
	"testing"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1250000, "$1,250,000"},
		{894062.63, "$894,063"},
		{999.4, "$999"},
		{-1500, "-$1,500"},
		{math.NaN(), Placeholder},
		{math.Inf(1), Placeholder},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(domain.Amount{}); got != Placeholder {
		t.Errorf("FormatAmount(invalid) = %q, want %q", got, Placeholder)
	}
	if got, want := FormatAmount(domain.Amount{Value: 50000, Valid: true}), "$50,000"; got != want {
		t.Errorf("FormatAmount = %q, want %q", got, want)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   domain.Amount
		want string
	}{
		{domain.Amount{Value: 894062.63, Valid: true}, "$894K"},
		{domain.Amount{Value: 1250000, Valid: true}, "$1M"},
		{domain.Amount{Value: 999600, Valid: true}, "$1M"},
		{domain.Amount{Value: 640, Valid: true}, "$640"},
		{domain.Amount{}, Placeholder},
	}
	for _, tc := range cases {
		if got := FormatCompact(tc.in); got != tc.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tc.in.Value, got, tc.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	if got, want := FormatFixed(domain.Amount{Value: 1179245.2830188679, Valid: true}), "1179245.28"; got != want {
		t.Errorf("FormatFixed = %q, want %q", got, want)
	}
	// Half cents round away from zero.
	for v, want := range map[float64]string{894062.625: "894062.63", -0.125: "-0.13", 400000: "400000.00"} {
		if got := FormatFixed(domain.Amount{Value: v, Valid: true}); got != want {
			t.Errorf("FormatFixed(%v) = %q, want %q", v, got, want)
		}
	}
	if got := FormatFixed(domain.Amount{}); got != "" {
		t.Errorf("FormatFixed(invalid) = %q, want empty", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	if got, want := FormatPercentage(0.04), "4.00%"; got != want {
		t.Errorf("FormatPercentage(0.04) = %q, want %q", got, want)
	}
	if got, want := FormatPercentage(0.035), "3.50%"; got != want {
		t.Errorf("FormatPercentage(0.035) = %q, want %q", got, want)
	}
	if got := FormatPercentage(math.NaN()); got != Placeholder {
		t.Errorf("FormatPercentage(NaN) = %q, want %q", got, Placeholder)
	}
}

func TestFormatCoastAge(t *testing.T) {
	age := 50
	if got, want := FormatCoastAge(&age), "Age 50"; got != want {
		t.Errorf("FormatCoastAge = %q, want %q", got, want)
	}
	if got, want := FormatCoastAge(nil), "Not in range"; got != want {
		t.Errorf("FormatCoastAge(nil) = %q, want %q", got, want)
	}
}
