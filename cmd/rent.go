package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// rentCmd holds the flags for the 'rent' subcommand.
type rentCmd struct {
	date     string
	property string

	monthlyRent          float64
	otherIncome          float64
	parkingIncome        float64
	laundryIncome        float64
	petRent              float64
	storageIncome        float64
	utilityReimbursement float64
}

func (*rentCmd) Name() string     { return "rent" }
func (*rentCmd) Synopsis() string { return "set the structured monthly income of a property" }
func (*rentCmd) Usage() string {
	return `rfs rent -property <id> -monthly <amount> [add-ons...] [-d <date>]

  Records the structured monthly income. The most recent record per property
  is the one in effect; record again to update.
`
}

func (c *rentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Effective date (defaults to today)")
	f.StringVar(&c.property, "property", "", "Property id")
	f.Float64Var(&c.monthlyRent, "monthly", 0, "Base monthly rent")
	f.Float64Var(&c.otherIncome, "other", 0, "Other monthly income")
	f.Float64Var(&c.parkingIncome, "parking", 0, "Monthly parking income")
	f.Float64Var(&c.laundryIncome, "laundry", 0, "Monthly laundry income")
	f.Float64Var(&c.petRent, "pet", 0, "Monthly pet rent")
	f.Float64Var(&c.storageIncome, "storage", 0, "Monthly storage income")
	f.Float64Var(&c.utilityReimbursement, "utility-reimbursement", 0, "Monthly utility reimbursement")
}

func (c *rentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ri := rentfolio.RentalIncome{
		MonthlyRent:          amount(c.monthlyRent),
		OtherIncome:          amount(c.otherIncome),
		ParkingIncome:        amount(c.parkingIncome),
		LaundryIncome:        amount(c.laundryIncome),
		PetRent:              amount(c.petRent),
		StorageIncome:        amount(c.storageIncome),
		UtilityReimbursement: amount(c.utilityReimbursement),
	}
	return appendEntry(rentfolio.NewSetRentalIncome(day, c.property, ri))
}
