package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// loanCmd holds the flags for the 'loan' subcommand.
type loanCmd struct {
	date     string
	property string

	id         string
	lender     string
	principal  float64
	rate       float64
	termMonths int
	payment    float64
	status     string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "set the terms of a property loan" }
func (*loanCmd) Usage() string {
	return `rfs loan -property <id> -id <loan_id> [terms...] [-d <date>]

  Records the terms of a loan. The most recent record per (property, loan id)
  is the one in effect, so refinancing is a new record with the same id.
  Without -payment, the monthly payment is derived from principal, rate and
  term. Only active loans contribute to debt service.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Effective date (defaults to today)")
	f.StringVar(&c.property, "property", "", "Property id")
	f.StringVar(&c.id, "id", "", "Loan id, unique within the property")
	f.StringVar(&c.lender, "lender", "", "Lender name")
	f.Float64Var(&c.principal, "principal", 0, "Loan principal")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate (0-1)")
	f.IntVar(&c.termMonths, "term", 0, "Term in months")
	f.Float64Var(&c.payment, "payment", 0, "Stored monthly payment (wins over derived)")
	f.StringVar(&c.status, "status", rentfolio.LoanActive, "Loan status (active, paid_off, ...)")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	loan := rentfolio.Loan{
		LoanID:     c.id,
		Lender:     c.lender,
		Principal:  amount(c.principal),
		AnnualRate: rentfolio.R(c.rate),
		TermMonths: c.termMonths,
		Payment:    amount(c.payment),
		Status:     c.status,
	}
	return appendEntry(rentfolio.NewSetLoan(day, c.property, loan))
}
