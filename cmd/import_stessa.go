package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/stessa"
)

// importStessaCmd holds the flags for the 'import-stessa' subcommand.
type importStessaCmd struct {
	property string
	file     string
}

func (*importStessaCmd) Name() string     { return "import-stessa" }
func (*importStessaCmd) Synopsis() string { return "import transactions from a Stessa JSON export" }
func (*importStessaCmd) Usage() string {
	return `rfs import-stessa -property <id> -file <export.json>

  Imports every transaction from a Stessa-style JSON export into the ledger.
  Rows without a parsable date are skipped and reported.
`
}

func (c *importStessaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Property id the transactions belong to")
	f.StringVar(&c.file, "file", "", "Path to the JSON export")
}

func (c *importStessaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	defer in.Close()

	txs, skipped, err := stessa.Import(in, c.property, *defaultCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	for _, t := range txs {
		if err := ledger.Validate(t); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	out, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	for _, t := range txs {
		if err := rentfolio.EncodeEntry(out, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d transactions into %s (%d rows skipped)\n", len(txs), *ledgerFile, skipped)
	return subcommands.ExitSuccess
}
