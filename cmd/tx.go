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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	property string
	start    string
	date     string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `rfs tx [-property <id>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting
  the output. Without -property, the whole portfolio is listed.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Property id; lists all properties when empty")
	f.StringVar(&c.start, "s", "", "The start date for a custom range.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	window, filtered, err := parseRange(c.start, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var transactions []rentfolio.Transaction
	for _, t := range ledger.Transactions(c.property) {
		if !filtered || window.Contains(t.When()) {
			transactions = append(transactions, t)
		}
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions))

	return subcommands.ExitSuccess
}
