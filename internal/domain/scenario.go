package domain

import (
	"fmt"
	"math"
)

// Default parameters of the interactive calculator.
const (
	DefaultMarketReturn       = 0.08
	DefaultBrokerFee          = 0.002
	DefaultAccountFee         = 0.005
	DefaultTaxRate            = 0.20
	DefaultAnnualContribution = 7056
	DefaultYears              = 40
	DefaultCurrency           = "CHF"

	// MaxYears bounds every projection horizon so a request cannot allocate unbounded rows.
	MaxYears = 1000
)

// ScenarioInputs are the user supplied parameters of a comparison.
// Rates are fractions (0.08 means 8%); values above 1 are accepted.
type ScenarioInputs struct {
	MarketReturn       float64 `yaml:"market_return" json:"market_return"`
	BrokerFee          float64 `yaml:"broker_fee" json:"broker_fee"`   // broker app + ETF TER
	AccountFee         float64 `yaml:"account_fee" json:"account_fee"` // tax-advantaged account fees
	TaxRate            float64 `yaml:"tax_rate" json:"tax_rate"`
	AnnualContribution float64 `yaml:"annual_contribution" json:"annual_contribution"`
	InitialInvestment  float64 `yaml:"initial_investment" json:"initial_investment"`
	Years              int     `yaml:"years" json:"years"`

	// WithdrawalTaxRate taxes the final gain of the account. Nil means TaxRate is used.
	WithdrawalTaxRate *float64 `yaml:"withdrawal_tax_rate,omitempty" json:"withdrawal_tax_rate,omitempty"`
}

// DefaultScenarioInputs returns the calculator defaults
func DefaultScenarioInputs() ScenarioInputs {
	return ScenarioInputs{
		MarketReturn:       DefaultMarketReturn,
		BrokerFee:          DefaultBrokerFee,
		AccountFee:         DefaultAccountFee,
		TaxRate:            DefaultTaxRate,
		AnnualContribution: DefaultAnnualContribution,
		Years:              DefaultYears,
	}
}

// Validate checks that every parameter is finite and the horizon is within 1..MaxYears.
func (in ScenarioInputs) Validate() error {
	const op = "domain.validate_inputs"
	fields := []struct {
		name  string
		value float64
	}{
		{"market_return", in.MarketReturn},
		{"broker_fee", in.BrokerFee},
		{"account_fee", in.AccountFee},
		{"tax_rate", in.TaxRate},
		{"annual_contribution", in.AnnualContribution},
		{"initial_investment", in.InitialInvestment},
	}
	if in.WithdrawalTaxRate != nil {
		fields = append(fields, struct {
			name  string
			value float64
		}{"withdrawal_tax_rate", *in.WithdrawalTaxRate})
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return NewError(op, KindInvalidArgument, "%s must be finite, got %v", f.name, f.value)
		}
	}
	if in.Years <= 0 {
		return NewError(op, KindInvalidArgument, "years must be positive, got %d", in.Years)
	}
	if in.Years > MaxYears {
		return NewError(op, KindInvalidArgument, "years must not exceed %d, got %d", MaxYears, in.Years)
	}
	return nil
}

// NetRates derives the fee-adjusted growth rates.
func (in ScenarioInputs) NetRates() NetRates {
	return NetRates{
		Direct:  in.MarketReturn - in.BrokerFee,
		Account: in.MarketReturn - in.AccountFee,
	}
}

// EffectiveWithdrawalTaxRate returns the rate applied to the terminal gain.
func (in ScenarioInputs) EffectiveWithdrawalTaxRate() float64 {
	if in.WithdrawalTaxRate != nil {
		return *in.WithdrawalTaxRate
	}
	return in.TaxRate
}

// TaxBenefitContribution is the yearly deduction reinvested in the direct strategy.
func (in ScenarioInputs) TaxBenefitContribution() float64 {
	return in.AnnualContribution * in.TaxRate
}

// GenerateAssumptions creates dynamic assumptions list from actual input values
func (in ScenarioInputs) GenerateAssumptions() []string {
	rates := in.NetRates()
	out := []string{
		fmt.Sprintf("Market return: %.2f%% annually", in.MarketReturn*100),
		fmt.Sprintf("Broker + ETF fees: %.2f%% annually (net direct return %.2f%%)", in.BrokerFee*100, rates.Direct*100),
		fmt.Sprintf("Account fees: %.2f%% annually (net account return %.2f%%)", in.AccountFee*100, rates.Account*100),
		fmt.Sprintf("Yearly contribution: %.2f for %d years, starting from %.2f", in.AnnualContribution, in.Years, in.InitialInvestment),
		fmt.Sprintf("Tax benefit of %.2f per year (%.2f%% tax rate) reinvested at the direct return", in.TaxBenefitContribution(), in.TaxRate*100),
	}
	if in.WithdrawalTaxRate == nil {
		out = append(out, fmt.Sprintf("Final gain of the account taxed once at withdrawal with the same %.2f%% rate", in.TaxRate*100))
	} else {
		out = append(out, fmt.Sprintf("Final gain of the account taxed once at withdrawal at %.2f%%", *in.WithdrawalTaxRate*100))
	}
	if in.InitialInvestment > 0 {
		out = append(out, fmt.Sprintf("Initial investment of %.2f counts as gain of the account and is taxed at withdrawal", in.InitialInvestment))
	}
	return out
}

// Configuration is the on-disk and environment configuration shape.
type Configuration struct {
	MarketReturn       float64  `yaml:"market_return" json:"market_return" env:"PILLAR_MARKET_RETURN"`
	BrokerFee          float64  `yaml:"broker_fee" json:"broker_fee" env:"PILLAR_BROKER_FEE"`
	AccountFee         float64  `yaml:"account_fee" json:"account_fee" env:"PILLAR_ACCOUNT_FEE"`
	TaxRate            float64  `yaml:"tax_rate" json:"tax_rate" env:"PILLAR_TAX_RATE"`
	WithdrawalTaxRate  *float64 `yaml:"withdrawal_tax_rate,omitempty" json:"withdrawal_tax_rate,omitempty" env:"PILLAR_WITHDRAWAL_TAX_RATE"`
	AnnualContribution float64  `yaml:"annual_contribution" json:"annual_contribution" env:"PILLAR_CONTRIBUTION"`
	InitialInvestment  float64  `yaml:"initial_investment" json:"initial_investment" env:"PILLAR_INITIAL"`
	Years              int      `yaml:"years" json:"years" env:"PILLAR_YEARS"`
	Currency           string   `yaml:"currency" json:"currency" env:"PILLAR_CURRENCY"`
}

// Inputs converts the configuration into scenario inputs.
func (c *Configuration) Inputs() ScenarioInputs {
	return ScenarioInputs{
		MarketReturn:       c.MarketReturn,
		BrokerFee:          c.BrokerFee,
		AccountFee:         c.AccountFee,
		TaxRate:            c.TaxRate,
		WithdrawalTaxRate:  c.WithdrawalTaxRate,
		AnnualContribution: c.AnnualContribution,
		InitialInvestment:  c.InitialInvestment,
		Years:              c.Years,
	}
}
