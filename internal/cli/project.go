package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpgo/pillar-calculator/internal/domain"
	"github.com/rpgo/pillar-calculator/internal/output"
)

func projectCmd(root *rootOptions) *cobra.Command {
	var (
		rate          float64
		initial       float64
		contribution  float64
		years         int
		contributions []float64
		format        string
	)

	c := &cobra.Command{
		Use:   "project",
		Short: "Project a single compounding investment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := root.engine()
			var (
				series domain.ProjectionSeries
				err    error
			)
			if len(contributions) > 0 {
				series, err = engine.RunSchedule(cmd.Context(), rate/100, initial, contributions)
			} else {
				series, err = engine.RunProjection(cmd.Context(), rate/100, initial, contribution, years)
			}
			if err != nil {
				return err
			}
			return printProjection(cmd.OutOrStdout(), series, format)
		},
	}

	c.Flags().Float64Var(&rate, "rate", (domain.DefaultMarketReturn-domain.DefaultBrokerFee)*100, "net yearly return in percent")
	c.Flags().Float64Var(&initial, "initial", 0, "initial investment")
	c.Flags().Float64Var(&contribution, "contribution", domain.DefaultAnnualContribution, "yearly contribution")
	c.Flags().IntVar(&years, "years", domain.DefaultYears, "investment horizon in years")
	c.Flags().Float64SliceVar(&contributions, "contributions", nil, "per-year contributions (replaces --contribution and --years)")
	c.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	return c
}

func printProjection(w io.Writer, series domain.ProjectionSeries, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(series)
	case "table", "":
		fmt.Fprintf(w, "%6s %22s %22s %22s\n", "Year", "Total Contributions", "Accrued Interest", "Total Value")
		for _, row := range series {
			fmt.Fprintf(w, "%6d %22s %22s %22s\n", row.Year,
				output.FormatAmount(row.TotalContributions), output.FormatAmount(row.AccruedInterest), output.FormatAmount(row.TotalValue))
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected table|json)", format)
	}
}
