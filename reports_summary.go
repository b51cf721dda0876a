package rentfolio

import "github.com/rentfolio/rentfolio/date"

// SummaryReport aggregates the operating metrics of every property in the
// ledger into one portfolio view.
type SummaryReport struct {
	Day   date.Date
	Lines []OperatingCoreMetrics

	TotalGrossIncome   Money
	TotalFixedExpenses Money
	TotalCapexReserve  Money
	TotalNOI           Money
	TotalDebtService   Money
	TotalNetCashFlow   Money
	Margin             Percent
}

// NewSummaryReport computes the operating metrics of every declared property
// and the portfolio totals. Liquid reserves are not tracked per property at
// the portfolio level, so the CapEx fallback does not apply here.
func NewSummaryReport(l *Ledger, day date.Date) (*SummaryReport, error) {
	report := &SummaryReport{Day: day}
	for p := range l.Properties() {
		m, err := l.OperatingMetrics(p.ID, Money{})
		if err != nil {
			return nil, err
		}
		report.Lines = append(report.Lines, *m)
		report.TotalGrossIncome = report.TotalGrossIncome.Add(m.GrossIncome)
		report.TotalFixedExpenses = report.TotalFixedExpenses.Add(m.TotalFixedExpenses)
		report.TotalCapexReserve = report.TotalCapexReserve.Add(m.CapexReserve)
		report.TotalNOI = report.TotalNOI.Add(m.NOI)
		report.TotalDebtService = report.TotalDebtService.Add(m.DebtService)
		report.TotalNetCashFlow = report.TotalNetCashFlow.Add(m.NetCashFlow)
	}
	if !report.TotalGrossIncome.IsZero() {
		report.Margin = Percent(report.TotalNetCashFlow.AsFloat() / report.TotalGrossIncome.AsFloat() * 100)
	}
	return report, nil
}
