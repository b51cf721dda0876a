package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	date     string
	property string

	propertyTaxes float64
	insurance     float64
	hoaFees       float64
	utilities     float64
	lawnCare      float64
	pestControl   float64

	otherExpenses    float64
	otherDescription string

	managementFlatFee float64
	managementRate    float64
	capexRate         float64
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "set the structured recurring costs of a property" }
func (*expensesCmd) Usage() string {
	return `rfs expenses -property <id> [cost fields...] [-d <date>]

  Records the structured recurring costs. Property taxes and insurance are
  annual figures; the other monetary fields are monthly. Rates are 0-1
  decimals on gross income. The most recent record per property is the one
  in effect.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Effective date (defaults to today)")
	f.StringVar(&c.property, "property", "", "Property id")
	f.Float64Var(&c.propertyTaxes, "taxes", 0, "Annual property taxes")
	f.Float64Var(&c.insurance, "insurance", 0, "Annual insurance premium")
	f.Float64Var(&c.hoaFees, "hoa", 0, "Monthly HOA fees")
	f.Float64Var(&c.utilities, "utilities", 0, "Monthly utilities")
	f.Float64Var(&c.lawnCare, "lawn", 0, "Monthly lawn care")
	f.Float64Var(&c.pestControl, "pest", 0, "Monthly pest control")
	f.Float64Var(&c.otherExpenses, "other", 0, "Other monthly expenses")
	f.StringVar(&c.otherDescription, "other-description", "", "Label for the other expenses")
	f.Float64Var(&c.managementFlatFee, "management-fee", 0, "Flat monthly management fee (wins over -management-rate)")
	f.Float64Var(&c.managementRate, "management-rate", 0, "Management rate on gross income (0-1)")
	f.Float64Var(&c.capexRate, "capex-rate", 0, "CapEx reserve rate on gross income (0-1)")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	oe := rentfolio.OperatingExpenses{
		PropertyTaxes:            amount(c.propertyTaxes),
		Insurance:                amount(c.insurance),
		HOAFees:                  amount(c.hoaFees),
		Utilities:                amount(c.utilities),
		LawnCare:                 amount(c.lawnCare),
		PestControl:              amount(c.pestControl),
		OtherExpenses:            amount(c.otherExpenses),
		OtherExpensesDescription: c.otherDescription,
		ManagementFlatFee:        amount(c.managementFlatFee),
		ManagementRate:           rentfolio.R(c.managementRate),
		CapexRate:                rentfolio.R(c.capexRate),
	}
	return appendEntry(rentfolio.NewSetOperatingExpenses(day, c.property, oe))
}
