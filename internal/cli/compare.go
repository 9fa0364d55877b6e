package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rpgo/pillar-calculator/internal/config"
	"github.com/rpgo/pillar-calculator/internal/domain"
	"github.com/rpgo/pillar-calculator/internal/output"
)

// scenarioFlags holds the command-line overrides; rates are in percent.
type scenarioFlags struct {
	marketReturn      float64
	brokerFee         float64
	accountFee        float64
	taxRate           float64
	withdrawalTaxRate float64
	contribution      float64
	initial           float64
	years             int
	currency          string
}

func (f *scenarioFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.marketReturn, "market-return", domain.DefaultMarketReturn*100, "expected market return in percent")
	fs.Float64Var(&f.brokerFee, "broker-fee", domain.DefaultBrokerFee*100, "broker app and ETF fees in percent")
	fs.Float64Var(&f.accountFee, "account-fee", domain.DefaultAccountFee*100, "3a account fees in percent")
	fs.Float64Var(&f.taxRate, "tax-rate", domain.DefaultTaxRate*100, "marginal income tax rate in percent")
	fs.Float64Var(&f.withdrawalTaxRate, "withdrawal-tax-rate", 0, "tax rate on the final gain in percent; follows --tax-rate when unset")
	fs.Float64Var(&f.contribution, "contribution", domain.DefaultAnnualContribution, "yearly contribution")
	fs.Float64Var(&f.initial, "initial", 0, "initial investment")
	fs.IntVar(&f.years, "years", domain.DefaultYears, "investment horizon in years")
	fs.StringVar(&f.currency, "currency", domain.DefaultCurrency, "display currency code")
}

// apply overlays the flags the user set explicitly.
func (f *scenarioFlags) apply(fs *pflag.FlagSet, cfg *domain.Configuration) {
	pct := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v / 100
		}
	}
	pct("market-return", &cfg.MarketReturn, f.marketReturn)
	pct("broker-fee", &cfg.BrokerFee, f.brokerFee)
	pct("account-fee", &cfg.AccountFee, f.accountFee)
	pct("tax-rate", &cfg.TaxRate, f.taxRate)
	if fs.Changed("withdrawal-tax-rate") {
		rate := f.withdrawalTaxRate / 100
		cfg.WithdrawalTaxRate = &rate
	}
	if fs.Changed("contribution") {
		cfg.AnnualContribution = f.contribution
	}
	if fs.Changed("initial") {
		cfg.InitialInvestment = f.initial
	}
	if fs.Changed("years") {
		cfg.Years = f.years
	}
	if fs.Changed("currency") {
		cfg.Currency = f.currency
	}
}

// resolveConfiguration applies defaults, file, env and flags in that order.
func resolveConfiguration(fs *pflag.FlagSet, configPath string, flags *scenarioFlags) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg, err := parser.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags.apply(fs, cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compareCmd(root *rootOptions) *cobra.Command {
	var (
		flags      scenarioFlags
		configPath string
		format     string
		outDir     string
	)

	c := &cobra.Command{
		Use:   "compare",
		Short: "Compare direct stock investing with the 3a pillar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfiguration(cmd.Flags(), configPath, &flags)
			if err != nil {
				return err
			}

			cmp, err := root.engine().RunComparison(cmd.Context(), cfg.Inputs())
			if err != nil {
				return err
			}
			cmp.Currency = cfg.Currency

			if outDir == "" {
				return output.Render(cmd.OutOrStdout(), cmp, format)
			}
			files, err := output.GenerateReport(cmp, format, outDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
			}
			return nil
		},
	}

	flags.register(c.Flags())
	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (optional)")
	c.Flags().StringVarP(&format, "format", "f", "console", "Output format (see 'pillarcalc formats'); 'all' with --out")
	c.Flags().StringVarP(&outDir, "out", "o", "", "Write a timestamped report into this directory instead of stdout")
	return c
}
