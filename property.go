package rentfolio

import "math"

// Property identifies a single real-estate asset. It owns at most one
// RentalIncome record, at most one OperatingExpenses record, and any number
// of Loan records. The engine never mutates a Property.
type Property struct {
	ID       string
	Name     string
	Address  string
	Strategy string // optional investment strategy tag, e.g. "brrrr"
}

// RentalIncome is the structured monthly income record of a property.
// Every field is optional; an absent field contributes zero.
type RentalIncome struct {
	MonthlyRent          Money
	OtherIncome          Money
	ParkingIncome        Money
	LaundryIncome        Money
	PetRent              Money
	StorageIncome        Money
	UtilityReimbursement Money
}

// MonthlyTotal returns the gross monthly income from all present fields.
func (ri RentalIncome) MonthlyTotal() Money {
	total := ri.MonthlyRent
	total = total.Add(ri.OtherIncome)
	total = total.Add(ri.ParkingIncome)
	total = total.Add(ri.LaundryIncome)
	total = total.Add(ri.PetRent)
	total = total.Add(ri.StorageIncome)
	total = total.Add(ri.UtilityReimbursement)
	return total
}

// OperatingExpenses is the structured recurring cost record of a property.
// Property taxes and insurance are annual figures; the other monetary fields
// are already monthly. Every field is optional.
type OperatingExpenses struct {
	PropertyTaxes Money // annual
	Insurance     Money // annual
	HOAFees       Money
	Utilities     Money
	LawnCare      Money
	PestControl   Money

	OtherExpenses            Money
	OtherExpensesDescription string

	// Management is either a flat monthly fee or a rate on gross income.
	// A non-zero flat fee always wins over the rate.
	ManagementFlatFee Money
	ManagementRate    Rate

	// CapexRate is the rate on gross income reserved for capital expenditures.
	CapexRate Rate
}

// Loan carries the terms of a property loan. Only loans with status "active"
// contribute to debt service.
type Loan struct {
	LoanID     string
	Lender     string
	Principal  Money
	AnnualRate Rate // 0-1 decimal annual interest rate
	TermMonths int
	Payment    Money // stored monthly payment; derived from the terms when zero
	Status     string
}

// LoanActive is the loan status that contributes to debt service.
const LoanActive = "active"

// MonthlyPayment returns the stored monthly payment, or derives it from the
// loan terms with the standard amortization formula. A zero-rate loan
// amortizes linearly; incomplete terms yield zero.
func (l Loan) MonthlyPayment() Money {
	if !l.Payment.IsZero() {
		return l.Payment
	}
	if l.TermMonths <= 0 || l.Principal.IsZero() {
		return Money{}
	}
	p := l.Principal.AsFloat()
	r := l.AnnualRate.AsFloat() / 12
	n := float64(l.TermMonths)
	if r == 0 {
		return M(p/n, l.Principal.Currency())
	}
	payment := p * r / (1 - math.Pow(1+r, -n))
	return M(payment, l.Principal.Currency())
}

// DebtService returns the total scheduled monthly payment across active loans.
func DebtService(loans []Loan) Money {
	var total Money
	for _, l := range loans {
		if l.Status != LoanActive {
			continue
		}
		total = total.Add(l.MonthlyPayment())
	}
	return total
}
