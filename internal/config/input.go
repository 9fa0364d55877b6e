package config

import (
	"fmt"
	"os"

	"github.com/rpgo/pillar-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns the calculator defaults
func DefaultConfiguration() *domain.Configuration {
	in := domain.DefaultScenarioInputs()
	return &domain.Configuration{
		MarketReturn:       in.MarketReturn,
		BrokerFee:          in.BrokerFee,
		AccountFee:         in.AccountFee,
		TaxRate:            in.TaxRate,
		AnnualContribution: in.AnnualContribution,
		InitialInvestment:  in.InitialInvestment,
		Years:              in.Years,
		Currency:           domain.DefaultCurrency,
	}
}

// LoadFromFile loads configuration from a YAML or JSON file. Keys missing from
// the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	const op = "config.load_file"
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &domain.CalcError{Op: op, Kind: domain.KindNotFound, Path: filename, Err: fmt.Errorf("failed to read file %s: %w", filename, err)}
	}

	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, &domain.CalcError{Op: op, Kind: domain.KindInvalidConfig, Path: filename, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, &domain.CalcError{Op: op, Kind: domain.KindInvalidConfig, Path: filename, Err: fmt.Errorf("configuration validation failed: %w", err)}
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is nil")
	}
	if err := config.Inputs().Validate(); err != nil {
		return err
	}
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}

// ApplyEnv overlays PILLAR_* environment variables onto config. Unset
// variables leave the current values untouched.
func (ip *InputParser) ApplyEnv(config *domain.Configuration) error {
	if err := ParseEnv(config); err != nil {
		return &domain.CalcError{Op: "config.apply_env", Kind: domain.KindInvalidConfig, Err: err}
	}
	return nil
}

// Load resolves defaults, an optional file and the environment, in that order.
func (ip *InputParser) Load(filename string) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if filename != "" {
		loaded, err := ip.LoadFromFile(filename)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if err := ip.ApplyEnv(config); err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, &domain.CalcError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: filename, Err: fmt.Errorf("configuration validation failed: %w", err)}
	}
	return config, nil
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
