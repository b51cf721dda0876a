package renderer

import (
	"fmt"

	"github.com/rentfolio/rentfolio"
)

// Entry renders a ledger entry to a one-line string.
func Entry(e rentfolio.Entry) string {
	switch v := e.(type) {
	case rentfolio.DeclareProperty:
		return fmt.Sprintf("Declared %s (%s)", v.PropertyID, v.Name)
	case rentfolio.SetRentalIncome:
		return fmt.Sprintf("Set rent of %s for %s", v.Rent.MonthlyTotal(), v.PropertyID)
	case rentfolio.SetOperatingExpenses:
		return fmt.Sprintf("Set operating expenses for %s", v.PropertyID)
	case rentfolio.SetLoan:
		return fmt.Sprintf("Set loan %s for %s, paying %s monthly", v.Loan.LoanID, v.PropertyID, v.Loan.MonthlyPayment())
	case rentfolio.Transaction:
		if v.Type() == rentfolio.Income {
			return fmt.Sprintf("Received %s of %s for %s", v.Category, v.Amount, v.PropertyID)
		}
		return fmt.Sprintf("Paid %s of %s for %s", v.Category, v.Amount, v.PropertyID)
	default:
		return string(e.What())
	}
}
