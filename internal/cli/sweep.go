package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpgo/pillar-calculator/internal/calculation"
	"github.com/rpgo/pillar-calculator/internal/domain"
	"github.com/rpgo/pillar-calculator/internal/output"
)

func sweepCmd(root *rootOptions) *cobra.Command {
	var (
		flags      scenarioFlags
		configPath string
		from       float64
		to         float64
		step       float64
		format     string
	)

	c := &cobra.Command{
		Use:   "sweep",
		Short: "Compare both options over a range of market returns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfiguration(cmd.Flags(), configPath, &flags)
			if err != nil {
				return err
			}
			returns, err := calculation.ReturnRange(from/100, to/100, step/100)
			if err != nil {
				return err
			}
			points, err := root.engine().RunSensitivity(cmd.Context(), cfg.Inputs(), returns)
			if err != nil {
				return err
			}
			return printSweep(cmd.OutOrStdout(), points, format)
		},
	}

	flags.register(c.Flags())
	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (optional)")
	c.Flags().Float64Var(&from, "from", 2, "lowest market return in percent")
	c.Flags().Float64Var(&to, "to", 10, "highest market return in percent")
	c.Flags().Float64Var(&step, "step", 1, "market return increment in percent")
	c.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	return c
}

func printSweep(w io.Writer, points []domain.SensitivityPoint, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	case "table", "":
		fmt.Fprintf(w, "%8s %18s %18s %18s  %s\n", "Return", "Option 1", "Option 2", "Difference", "Winner")
		for _, p := range points {
			fmt.Fprintf(w, "%8s %18s %18s %18s  %s\n", output.FormatPercentage(p.MarketReturn),
				output.FormatWhole(p.DirectFinalValue), output.FormatWhole(p.AccountFinalValue), output.FormatAmount(p.Difference), p.Winner)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected table|json)", format)
	}
}
