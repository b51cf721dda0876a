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

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	property string
	date     string
	days     int
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the daily projected-versus-actual report" }
func (*dailyCmd) Usage() string {
	return `rfs daily -property <id> [-d <date>] [-n <days>]

  Spreads the monthly projection evenly over a trailing window ending on the
  given date and compares it with the recorded transactions per day.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Property id")
	f.StringVar(&c.date, "d", "", "Last day of the window (defaults to today)")
	f.IntVar(&c.days, "n", 30, "Number of days in the window")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report, err := rentfolio.NewDailyReport(ledger, c.property, day, c.days)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DailyMarkdown(report))
	return subcommands.ExitSuccess
}
