package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `rfs summary [-d <date>]

  Displays the operating metrics of every property and the portfolio totals.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (defaults to today)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	report, err := rentfolio.NewSummaryReport(ledger, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
