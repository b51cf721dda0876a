package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// propertyCmd holds the flags for the 'property' subcommand.
type propertyCmd struct {
	date     string
	id       string
	name     string
	address  string
	strategy string
}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "declare a property in the ledger" }
func (*propertyCmd) Usage() string {
	return `rfs property -id <id> [-name <name>] [-address <address>] [-strategy <strategy>] [-d <date>]

  Declares a property. All subsequent entries for the same id refer to it.
`
}

func (c *propertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Declaration date (defaults to today)")
	f.StringVar(&c.id, "id", "", "Unique property id")
	f.StringVar(&c.name, "name", "", "Display name of the property")
	f.StringVar(&c.address, "address", "", "Street address")
	f.StringVar(&c.strategy, "strategy", "", "Investment strategy tag (e.g. brrrr, buy_and_hold)")
}

func (c *propertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendEntry(rentfolio.NewDeclareProperty(day, c.id, c.name, c.address, c.strategy))
}
