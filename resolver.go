package rentfolio

// LineItem is a labeled monetary contribution to gross income or fixed
// expenses.
type LineItem struct {
	ID     string
	Label  string
	Amount Money
}

// StructuredData is the canonical monthly view extracted from the structured
// records of a property. It is the first stage of the metrics pipeline.
type StructuredData struct {
	Income    Money
	LineItems []LineItem

	// HasIncome reports whether a rental income record exists and sums to a
	// nonzero value. When true, transaction-derived income is ignored.
	HasIncome bool
	// HasManagement reports whether the expenses record resolved a management
	// line item, flat fee or rate. Used downstream to prevent double counting.
	HasManagement bool
	// HasBasis reports whether any structured record exists at all. Without a
	// basis there is nothing to project.
	HasBasis bool
}

// monthly converts an annual figure to its monthly equivalent.
func monthly(annual Money) Money { return annual.Div(R(12)) }

// ResolveStructured extracts canonical monthly income and expense line items
// from the structured records of a property. Either record may be nil; the
// result is then partial, never an error.
//
// Annual figures (property taxes, insurance) are divided by 12. The
// management fee follows a fixed priority: a flat fee wins over a rate, and a
// rate applies only when gross income is positive.
func ResolveStructured(ri *RentalIncome, oe *OperatingExpenses) StructuredData {
	sd := StructuredData{HasBasis: ri != nil || oe != nil}

	if ri != nil {
		sd.Income = ri.MonthlyTotal()
		sd.HasIncome = !sd.Income.IsZero()
	}
	if oe == nil {
		return sd
	}

	item := func(id, label string, amount Money) {
		if !amount.IsZero() {
			sd.LineItems = append(sd.LineItems, LineItem{ID: id, Label: label, Amount: amount})
		}
	}

	item("property-taxes", "Property Taxes", monthly(oe.PropertyTaxes))
	item("insurance", "Insurance", monthly(oe.Insurance))
	item("hoa-fees", "HOA Fees", oe.HOAFees)
	item("utilities", "Utilities", oe.Utilities)
	item("lawn-care", "Lawn Care", oe.LawnCare)
	item("pest-control", "Pest Control", oe.PestControl)

	otherLabel := oe.OtherExpensesDescription
	if otherLabel == "" {
		otherLabel = "Other"
	}
	item("other", otherLabel, oe.OtherExpenses)

	switch {
	case !oe.ManagementFlatFee.IsZero():
		item("management", "Management", oe.ManagementFlatFee)
		sd.HasManagement = true
	case !oe.ManagementRate.IsZero() && sd.Income.IsPositive():
		item("management", "Management", sd.Income.Mul(oe.ManagementRate))
		sd.HasManagement = true
	}
	return sd
}
