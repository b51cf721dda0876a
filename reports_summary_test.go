package rentfolio

import (
	"testing"

	"github.com/rentfolio/rentfolio/date"
)

func TestSummaryReport(t *testing.T) {
	day := date.New(2025, 7, 1)
	l := NewLedger()
	l.Append(
		NewDeclareProperty(date.New(2025, 1, 1), "p1", "Maple Duplex", "", ""),
		NewDeclareProperty(date.New(2025, 1, 1), "p2", "Oak House", "", ""),
		NewSetRentalIncome(day, "p1", RentalIncome{MonthlyRent: usd(2000)}),
		NewSetRentalIncome(day, "p2", RentalIncome{MonthlyRent: usd(1500)}),
		NewSetOperatingExpenses(day, "p1", OperatingExpenses{HOAFees: usd(100)}),
		NewSetLoan(day, "p2", Loan{LoanID: "l1", Payment: usd(700), Status: LoanActive}),
	)

	report, err := NewSummaryReport(l, day)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(report.Lines))
	}
	// sorted by property id
	if report.Lines[0].PropertyID != "p1" || report.Lines[1].PropertyID != "p2" {
		t.Errorf("got lines %q,%q, want p1,p2", report.Lines[0].PropertyID, report.Lines[1].PropertyID)
	}
	if want := usd(3500); !report.TotalGrossIncome.Equal(want) {
		t.Errorf("got total gross income %v, want %v", report.TotalGrossIncome, want)
	}
	if want := usd(100); !report.TotalFixedExpenses.Equal(want) {
		t.Errorf("got total fixed expenses %v, want %v", report.TotalFixedExpenses, want)
	}
	if want := usd(700); !report.TotalDebtService.Equal(want) {
		t.Errorf("got total debt service %v, want %v", report.TotalDebtService, want)
	}
	// (3400 NOI - 700 debt service) / 3500 income
	if want := usd(2700); !report.TotalNetCashFlow.Equal(want) {
		t.Errorf("got total net cash flow %v, want %v", report.TotalNetCashFlow, want)
	}
	if want := Percent(77.142857); !report.Margin.Equal(want) {
		t.Errorf("got margin %v, want %v", report.Margin, want)
	}
}

func TestSummaryReportEmptyLedger(t *testing.T) {
	report, err := NewSummaryReport(NewLedger(), date.New(2025, 7, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines) != 0 || !report.TotalGrossIncome.IsZero() || report.Margin != 0 {
		t.Errorf("got %+v, want an empty report", report)
	}
}
