package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		atDate    time.Time
		expected  int
	}{
		{
			name:      "Birthday already passed this year",
			birthDate: time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC),
			atDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  30,
		},
		{
			name:      "Birthday later this year",
			birthDate: time.Date(1995, 9, 10, 0, 0, 0, 0, time.UTC),
			atDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  29,
		},
		{
			name:      "Birthday today",
			birthDate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
			atDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  30,
		},
		{
			name:      "Day before birthday",
			birthDate: time.Date(1995, 6, 2, 0, 0, 0, 0, time.UTC),
			atDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  29,
		},
		{
			name:      "Leap day birthday in non-leap year",
			birthDate: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected:  25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestYearReachingAge(t *testing.T) {
	birth := time.Date(1995, 9, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2045, YearReachingAge(birth, 50))
	assert.Equal(t, 1995, YearReachingAge(birth, 0))
}

func TestParseBirthDate(t *testing.T) {
	d, err := ParseBirthDate("1995-09-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1995, 9, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseBirthDate("1995-09-10T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 1995, d.Year())

	_, err = ParseBirthDate("10/09/1995")
	assert.Error(t, err)
}
