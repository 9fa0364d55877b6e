package models

import "github.com/rpgo/pillar-calculator/internal/domain"

// ScenarioRequest represents the request body of a comparison.
// Omitted fields take the calculator defaults; rates are fractions.
type ScenarioRequest struct {
	MarketReturn       *float64 `json:"market_return,omitempty"`
	BrokerFee          *float64 `json:"broker_fee,omitempty"`
	AccountFee         *float64 `json:"account_fee,omitempty"`
	TaxRate            *float64 `json:"tax_rate,omitempty"`
	WithdrawalTaxRate  *float64 `json:"withdrawal_tax_rate,omitempty"`
	AnnualContribution *float64 `json:"annual_contribution,omitempty"`
	InitialInvestment  *float64 `json:"initial_investment,omitempty"`
	Years              *int     `json:"years,omitempty"`
	Currency           string   `json:"currency,omitempty"`
}

// Inputs merges the request over the calculator defaults.
func (r ScenarioRequest) Inputs() domain.ScenarioInputs {
	in := domain.DefaultScenarioInputs()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&in.MarketReturn, r.MarketReturn)
	set(&in.BrokerFee, r.BrokerFee)
	set(&in.AccountFee, r.AccountFee)
	set(&in.TaxRate, r.TaxRate)
	set(&in.AnnualContribution, r.AnnualContribution)
	set(&in.InitialInvestment, r.InitialInvestment)
	if r.Years != nil {
		in.Years = *r.Years
	}
	in.WithdrawalTaxRate = r.WithdrawalTaxRate
	return in
}

// CurrencyOrDefault returns the requested display currency.
func (r ScenarioRequest) CurrencyOrDefault() string {
	if r.Currency == "" {
		return domain.DefaultCurrency
	}
	return r.Currency
}

// ProjectionRequest represents the request body of a single projection.
// Contributions, when present, replace AnnualContribution and Years.
type ProjectionRequest struct {
	Rate               *float64  `json:"rate" binding:"required"`
	InitialInvestment  float64   `json:"initial_investment,omitempty"`
	AnnualContribution float64   `json:"annual_contribution,omitempty"`
	Years              int       `json:"years,omitempty"`
	Contributions      []float64 `json:"contributions,omitempty"`
}

// SensitivityRequest represents the request body of a market return sweep.
// Bounds are fractions; zero values select 0.02..0.10 in 0.01 steps.
type SensitivityRequest struct {
	ScenarioRequest
	From float64 `json:"from,omitempty"`
	To   float64 `json:"to,omitempty"`
	Step float64 `json:"step,omitempty"`
}

// Range returns the sweep bounds with defaults applied.
func (r SensitivityRequest) Range() (from, to, step float64) {
	from, to, step = r.From, r.To, r.Step
	if from == 0 && to == 0 {
		from, to = 0.02, 0.10
	}
	if step == 0 {
		step = 0.01
	}
	return from, to, step
}
