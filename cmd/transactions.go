package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/date"
)

// transactionFlags are the flags shared by the income and expense subcommands.
type transactionFlags struct {
	date        string
	property    string
	category    string
	subcategory string
	description string
	amount      float64
	recurring   string
	excluded    bool
}

func (c *transactionFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today)")
	f.StringVar(&c.property, "property", "", "Property id")
	f.StringVar(&c.category, "category", "", "Category (e.g. rent, cleaning, management)")
	f.StringVar(&c.subcategory, "subcategory", "", "Optional subcategory")
	f.StringVar(&c.description, "description", "", "Free-text description")
	f.Float64Var(&c.amount, "amount", 0, "Amount")
	f.StringVar(&c.recurring, "recurring", "", "Recurrence frequency (monthly, quarterly, yearly)")
	f.BoolVar(&c.excluded, "excluded", false, "Exclude this transaction from every calculation")
}

func (c *transactionFlags) entry(kind rentfolio.TransactionType) (rentfolio.Transaction, error) {
	day, err := parseDay(c.date)
	if err != nil {
		return rentfolio.Transaction{}, err
	}
	var t rentfolio.Transaction
	if kind == rentfolio.Income {
		t = rentfolio.NewIncome(day, c.property, c.category, amount(c.amount))
	} else {
		t = rentfolio.NewExpense(day, c.property, c.category, amount(c.amount))
	}
	t.Subcategory = c.subcategory
	t.Description = c.description
	if c.recurring != "" {
		t = t.Recurring(c.recurring)
	}
	if c.excluded {
		t = t.Excluded()
	}
	return t, nil
}

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct{ transactionFlags }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income transaction" }
func (*incomeCmd) Usage() string {
	return `rfs income -property <id> -category <category> -amount <amount> [-d <date>] [-recurring <frequency>]

  Records an income transaction in the ledger. Transaction income is used as
  a fallback when no structured rent record exists.
`
}
func (c *incomeCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := c.entry(rentfolio.Income)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendEntry(t)
}

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct{ transactionFlags }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense transaction" }
func (*expenseCmd) Usage() string {
	return `rfs expense -property <id> -category <category> -amount <amount> [-d <date>] [-recurring <frequency>]

  Records an expense transaction in the ledger. Recurring monthly expenses
  supplement the structured operating costs in the metrics.
`
}
func (c *expenseCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := c.entry(rentfolio.Expense)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendEntry(t)
}

// parseRange parses the optional -s/-d flags into a date range, or returns
// ok=false when no filter was given.
func parseRange(start, end string) (r date.Range, ok bool, err error) {
	if start == "" && end == "" {
		return date.Range{}, false, nil
	}
	endDate := date.Today()
	if end != "" {
		if endDate, err = date.Parse(end); err != nil {
			return date.Range{}, false, err
		}
	}
	startDate := endDate.Add(-29)
	if start != "" {
		if startDate, err = date.Parse(start); err != nil {
			return date.Range{}, false, err
		}
	}
	return date.NewRange(startDate, endDate), true, nil
}
