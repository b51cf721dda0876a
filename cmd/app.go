// Package cmd implements the CLI application to manage a rental portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/date"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&propertyCmd{}, "ledger")
	c.Register(&rentCmd{}, "ledger")
	c.Register(&expensesCmd{}, "ledger")
	c.Register(&loanCmd{}, "ledger")
	c.Register(&incomeCmd{}, "ledger")
	c.Register(&expenseCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importStessaCmd{}, "ledger")

	c.Register(&metricsCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Environment variables overriding the flag defaults.
const (
	EnvLedgerFile      = "RFS_LEDGER_FILE"
	EnvDefaultCurrency = "RFS_DEFAULT_CURRENCY"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "rentfolio.jsonl"), "Path to the ledger file (JSONL format)")
var defaultCurrency = flag.String("default-currency", envOr(EnvDefaultCurrency, "USD"), "Currency code used for recorded amounts")

// DecodeLedgerFile decodes the app ledger file. A missing file is an empty
// ledger, not an error.
func DecodeLedgerFile() (*rentfolio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return rentfolio.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	l, err := rentfolio.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return l, nil
}

// appendEntry validates the entry against the current ledger and appends it
// to the app ledger file.
func appendEntry(e rentfolio.Entry) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Validate(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := rentfolio.EncodeEntry(f, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s entry to %s\n", e.What(), *ledgerFile)
	return subcommands.ExitSuccess
}

// parseDay parses a date flag, defaulting to today when empty.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// amount builds a Money from an amount flag using the app default currency.
func amount(v float64) rentfolio.Money {
	return rentfolio.M(v, *defaultCurrency)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
