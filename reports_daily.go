package rentfolio

import (
	"fmt"

	"github.com/rentfolio/rentfolio/date"
)

// DailyFigures groups the three figures tracked per day.
type DailyFigures struct {
	Income   Money
	Expenses Money
	CashFlow Money // Income minus Expenses
}

// DailyVariance is the component-wise difference between actual and projected
// figures for one day.
type DailyVariance struct {
	Income   Money
	Expenses Money
	CashFlow Money
	// CashFlowPercent relates the cash-flow variance to the projected cash
	// flow, and is exactly zero when there is nothing projected to relate to.
	CashFlowPercent Percent
}

// DailyMetric is one day of the projected-versus-actual series.
type DailyMetric struct {
	Day date.Date
	// Projected is nil for the whole series when the property has no
	// structured record to project from.
	Projected *DailyFigures
	Actual    DailyFigures
	// Variance is nil whenever Projected is nil.
	Variance *DailyVariance
}

// DailyMetricsData is the daily projected-versus-actual report of a property
// over a trailing window.
type DailyMetricsData struct {
	PropertyID string
	Days       []DailyMetric

	HasProjectedData bool
	HasActualData    bool
}

// NewDailyReport spreads the monthly projection of a property evenly over a
// trailing window of days ending on asof (inclusive, oldest first) and
// aggregates the actual transactions per calendar day.
//
// The projection is computed from structured records only, ignoring
// transactions, and distributed equally over the window without day-of-month
// weighting. Without any structured record there is no basis to project and
// the projected side of every day is nil.
func NewDailyReport(l *Ledger, propertyID string, asof date.Date, days int) (*DailyMetricsData, error) {
	if l.Property(propertyID) == nil {
		return nil, fmt.Errorf("unknown property %q", propertyID)
	}
	if days < 1 {
		return nil, fmt.Errorf("invalid window of %d days", days)
	}

	ri := l.RentalIncome(propertyID)
	oe := l.OperatingExpenses(propertyID)
	sd := ResolveStructured(ri, oe)

	var projected *DailyFigures
	if sd.HasBasis {
		m := Calculate(sd.Income, sd.LineItems, capexBasis(oe, Money{}), DebtService(l.Loans(propertyID)))
		perDay := R(days)
		income := m.GrossIncome.Div(perDay)
		expenses := m.TotalFixedExpenses.Add(m.CapexReserve).Div(perDay)
		projected = &DailyFigures{
			Income:   income,
			Expenses: expenses,
			CashFlow: income.Sub(expenses),
		}
	}

	// Aggregate actuals per calendar day.
	window := date.Trailing(asof, days)
	actuals := make(map[date.Date]DailyFigures)
	for _, t := range l.Transactions(propertyID) {
		if t.IsExcluded || !window.Contains(t.Date) {
			continue
		}
		figures := actuals[t.Date]
		switch t.Type() {
		case Income:
			figures.Income = figures.Income.Add(t.Amount)
		case Expense:
			figures.Expenses = figures.Expenses.Add(t.Amount)
		}
		figures.CashFlow = figures.Income.Sub(figures.Expenses)
		actuals[t.Date] = figures
	}

	report := &DailyMetricsData{
		PropertyID:       propertyID,
		HasProjectedData: projected != nil,
		HasActualData:    len(actuals) > 0,
	}
	for day := range window.Days() {
		metric := DailyMetric{Day: day, Projected: projected, Actual: actuals[day]}
		if projected != nil {
			metric.Variance = variance(metric.Actual, *projected)
		}
		report.Days = append(report.Days, metric)
	}
	return report, nil
}

// variance computes the component-wise actual minus projected difference.
func variance(actual, projected DailyFigures) *DailyVariance {
	v := &DailyVariance{
		Income:   actual.Income.Sub(projected.Income),
		Expenses: actual.Expenses.Sub(projected.Expenses),
		CashFlow: actual.CashFlow.Sub(projected.CashFlow),
	}
	if p := projected.CashFlow.AsFloat(); p != 0 {
		v.CashFlowPercent = Percent(v.CashFlow.AsFloat() / abs(p) * 100)
	}
	return v
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
