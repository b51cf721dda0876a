package rentfolio

import "fmt"

// CapexBasis selects how the capital-expenditure reserve is derived. A
// configured rate applies to gross income; without one the reserve falls back
// to a twelfth of the liquid reserves, an approximation that yields zero when
// neither input exists.
type CapexBasis struct {
	Rate           *Rate
	LiquidReserves Money
}

// Reserve returns the monthly CapEx reserve for the given gross income.
func (b CapexBasis) Reserve(grossIncome Money) Money {
	if b.Rate != nil {
		return grossIncome.Mul(*b.Rate)
	}
	if !b.LiquidReserves.IsZero() {
		return monthly(b.LiquidReserves)
	}
	return Money{}
}

// OperatingCoreMetrics are the instantaneous operating figures of a property.
type OperatingCoreMetrics struct {
	PropertyID string

	GrossIncome        Money
	FixedExpenses      []LineItem
	TotalFixedExpenses Money
	CapexReserve       Money
	NOI                Money
	DebtService        Money
	NetCashFlow        Money
	Margin             Percent
}

// Calculate derives the operating metrics from reconciled inputs. It is a
// pure function: no side effects, deterministic given identical inputs.
//
// Net cash flow is always NOI minus debt service; the margin relates it to
// gross income and is exactly zero when there is no income.
func Calculate(income Money, items []LineItem, capex CapexBasis, debtService Money) OperatingCoreMetrics {
	var totalFixed Money
	for _, it := range items {
		totalFixed = totalFixed.Add(it.Amount)
	}
	reserve := capex.Reserve(income)
	noi := income.Sub(totalFixed).Sub(reserve)
	cashFlow := noi.Sub(debtService)

	var margin Percent
	if !income.IsZero() {
		margin = Percent(cashFlow.AsFloat() / income.AsFloat() * 100)
	}
	return OperatingCoreMetrics{
		GrossIncome:        income,
		FixedExpenses:      items,
		TotalFixedExpenses: totalFixed,
		CapexReserve:       reserve,
		NOI:                noi,
		DebtService:        debtService,
		NetCashFlow:        cashFlow,
		Margin:             margin,
	}
}

// capexBasis builds the CapEx basis from an expenses record and the liquid
// reserves reported by the caller. A zero rate counts as not configured.
func capexBasis(oe *OperatingExpenses, liquidReserves Money) CapexBasis {
	basis := CapexBasis{LiquidReserves: liquidReserves}
	if oe != nil && !oe.CapexRate.IsZero() {
		rate := oe.CapexRate
		basis.Rate = &rate
	}
	return basis
}

// OperatingMetrics runs the full pipeline for one property: structured
// records are resolved, reconciled with the ledger transactions, and turned
// into operating metrics. Liquid reserves feed the CapEx fallback and may be
// zero.
func (l *Ledger) OperatingMetrics(propertyID string, liquidReserves Money) (*OperatingCoreMetrics, error) {
	if l.Property(propertyID) == nil {
		return nil, fmt.Errorf("unknown property %q", propertyID)
	}
	ri := l.RentalIncome(propertyID)
	oe := l.OperatingExpenses(propertyID)

	sd := ResolveStructured(ri, oe)
	rd := Reconcile(sd, l.Transactions(propertyID))
	m := Calculate(rd.Income, rd.LineItems, capexBasis(oe, liquidReserves), DebtService(l.Loans(propertyID)))
	m.PropertyID = propertyID
	return &m, nil
}
