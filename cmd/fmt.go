package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `rfs fmt

  Validates and formats the ledger file. This command reads all entries,
  validates them, sorts them by date, and writes them back in a canonical
  JSONL format.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var errs []error
	for e := range ledger.Entries() {
		errs = append(errs, ledger.Validate(e))
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: ledger is not valid:\n%v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := rentfolio.EncodeLedger(&buf, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(*ledgerFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Finished formatting ledger %q.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
