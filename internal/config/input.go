package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// ErrInvalidAge is returned when a raw age cannot be read as a number.
var ErrInvalidAge = errors.New("current age must be a number")

// Raw input field names, shared by query strings and form posts.
const (
	FieldCurrentAssets = "current_assets"
	FieldCurrentAge    = "current_age"
	FieldBirthDate     = "birth_date"
	FieldSWR           = "swr"
	FieldReturnRate    = "return_rate"
	FieldInflation     = "inflation"
	FieldSpending      = "spending"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, normalizes and validates a YAML (or JSON) document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.Normalize(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Normalize fills default sweep settings and derives the current age from a birth date.
func (ip *InputParser) Normalize(config *domain.Configuration) {
	config.Settings = config.Settings.WithDefaults()
	if config.Inputs.BirthDate != nil {
		config.Inputs.CurrentAge = dateutil.Age(*config.Inputs.BirthDate, calculation.Now())
	}
}

// ValidateConfiguration validates the loaded configuration.
// An SWR or growth rate that makes projections undefined is not an error; it is reported as a warning.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateInputs(&config.Inputs); err != nil {
		return fmt.Errorf("inputs validation failed: %w", err)
	}
	if err := calculation.ValidateSettings(config.Settings); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateInputs(in *domain.Inputs) error {
	if math.IsNaN(in.CurrentAssets) || in.CurrentAssets < 0 {
		return fmt.Errorf("current assets cannot be negative")
	}
	if in.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if in.BirthDate != nil && in.BirthDate.After(calculation.Now()) {
		return fmt.Errorf("birth date cannot be in the future")
	}
	if !(in.Spending > 0) {
		return fmt.Errorf("spending must be positive")
	}
	return nil
}

// ParseRawInputs converts string values from an input form or query string.
// Non-numeric rates and amounts become NaN and surface as undefined projections;
// spending is clamped into the settings range.
func ParseRawInputs(raw map[string]string, settings domain.Settings) (domain.Inputs, error) {
	in := domain.Inputs{
		CurrentAssets: calculation.ParseNumber(raw[FieldCurrentAssets]),
		SWR:           calculation.ParseNumber(raw[FieldSWR]),
		ReturnRate:    calculation.ParseNumber(raw[FieldReturnRate]),
		Inflation:     calculation.ParseNumber(raw[FieldInflation]),
		Spending:      settings.ClampSpending(calculation.ParseNumber(raw[FieldSpending])),
	}

	if b := strings.TrimSpace(raw[FieldBirthDate]); b != "" {
		birth, err := dateutil.ParseBirthDate(b)
		if err != nil {
			return domain.Inputs{}, fmt.Errorf("invalid birth date %q: %w", b, err)
		}
		in.BirthDate = &birth
		in.CurrentAge = dateutil.Age(birth, calculation.Now())
		return in, nil
	}

	age := calculation.ParseNumber(raw[FieldCurrentAge])
	if math.IsNaN(age) || math.IsInf(age, 0) {
		return domain.Inputs{}, fmt.Errorf("%w: %q", ErrInvalidAge, raw[FieldCurrentAge])
	}
	in.CurrentAge = int(math.Trunc(age))
	return in, nil
}

// DefaultInputs returns the starting values shown before the user edits anything.
func DefaultInputs() domain.Inputs {
	return domain.Inputs{
		CurrentAssets: 400000,
		CurrentAge:    30,
		SWR:           0.04,
		ReturnRate:    0.1,
		Inflation:     0.04,
		Spending:      50000,
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Inputs:   DefaultInputs(),
		Settings: domain.DefaultSettings(),
	}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
