package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio/renderer"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	property       string
	liquidReserves float64
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display the operating metrics of a property" }
func (*metricsCmd) Usage() string {
	return `rfs metrics -property <id> [-liquid-reserves <amount>]

  Displays gross income, fixed expenses, CapEx reserve, NOI, debt service,
  net cash flow and margin for a property. Liquid reserves feed the CapEx
  fallback when no CapEx rate is configured.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Property id")
	f.Float64Var(&c.liquidReserves, "liquid-reserves", 0, "Liquid reserves for the CapEx fallback")
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	m, err := ledger.OperatingMetrics(c.property, amount(c.liquidReserves))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MetricsMarkdown(m))
	return subcommands.ExitSuccess
}
