package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// YearReachingAge returns the calendar year in which a person born on birthDate turns age.
func YearReachingAge(birthDate time.Time, age int) int {
	return birthDate.Year() + age
}

// ParseBirthDate accepts a plain date (2006-01-02) or an RFC 3339 timestamp.
func ParseBirthDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
