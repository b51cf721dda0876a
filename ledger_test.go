package rentfolio

import (
	"testing"

	"github.com/rentfolio/rentfolio/date"
)

func TestLedgerChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDeclareProperty(date.New(2025, 1, 1), "p1", "Maple Duplex", "", ""),
		NewIncome(date.New(2025, 7, 3), "p1", "rent", usd(100)),
		NewIncome(date.New(2025, 7, 1), "p1", "rent", usd(200)),
		NewIncome(date.New(2025, 7, 2), "p1", "rent", usd(300)),
	)
	var previous date.Date
	for e := range l.Entries() {
		if e.When().Before(previous) {
			t.Fatalf("entries out of order: %v after %v", e.When(), previous)
		}
		previous = e.When()
	}
	if got := l.OldestEntryDate(); got != date.New(2025, 1, 1) {
		t.Errorf("got oldest entry date %v, want 2025-01-01", got)
	}
}

func TestLedgerLatestRecordWins(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDeclareProperty(date.New(2025, 1, 1), "p1", "Maple Duplex", "", ""),
		NewSetRentalIncome(date.New(2025, 3, 1), "p1", RentalIncome{MonthlyRent: usd(1800)}),
		NewSetRentalIncome(date.New(2025, 7, 1), "p1", RentalIncome{MonthlyRent: usd(2000)}),
		NewSetRentalIncome(date.New(2025, 5, 1), "p1", RentalIncome{MonthlyRent: usd(1900)}),
	)
	ri := l.RentalIncome("p1")
	if ri == nil {
		t.Fatal("got nil rental income")
	}
	if want := usd(2000); !ri.MonthlyRent.Equal(want) {
		t.Errorf("got rent %v, want the latest record %v", ri.MonthlyRent, want)
	}
	if l.RentalIncome("p2") != nil {
		t.Errorf("got a rental income record for an unknown property")
	}
}

func TestLedgerLoansPerID(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDeclareProperty(date.New(2025, 1, 1), "p1", "Maple Duplex", "", ""),
		NewSetLoan(date.New(2025, 2, 1), "p1", Loan{LoanID: "primary", Payment: usd(900), Status: LoanActive}),
		NewSetLoan(date.New(2025, 6, 1), "p1", Loan{LoanID: "primary", Payment: usd(850), Status: LoanActive}), // refinanced
		NewSetLoan(date.New(2025, 3, 1), "p1", Loan{LoanID: "heloc", Payment: usd(200), Status: LoanActive}),
	)
	loans := l.Loans("p1")
	if len(loans) != 2 {
		t.Fatalf("got %d loans, want 2", len(loans))
	}
	// sorted by loan id
	if loans[0].LoanID != "heloc" || loans[1].LoanID != "primary" {
		t.Errorf("got loans %v,%v, want heloc,primary", loans[0].LoanID, loans[1].LoanID)
	}
	if want := usd(850); !loans[1].Payment.Equal(want) {
		t.Errorf("got payment %v, want the refinanced %v", loans[1].Payment, want)
	}
}

func TestLedgerTransactionsFilter(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewDeclareProperty(date.New(2025, 1, 1), "p1", "Maple Duplex", "", ""),
		NewDeclareProperty(date.New(2025, 1, 1), "p2", "Oak House", "", ""),
		NewIncome(date.New(2025, 7, 1), "p1", "rent", usd(100)),
		NewIncome(date.New(2025, 7, 1), "p2", "rent", usd(200)),
	)
	if got := len(l.Transactions("p1")); got != 1 {
		t.Errorf("got %d transactions for p1, want 1", got)
	}
	if got := len(l.Transactions("")); got != 2 {
		t.Errorf("got %d transactions for the portfolio, want 2", got)
	}
}

func TestLedgerValidate(t *testing.T) {
	l := NewLedger()
	l.Append(NewDeclareProperty(date.New(2025, 1, 1), "p1", "Maple Duplex", "", ""))

	tests := []struct {
		name  string
		entry Entry
		valid bool
	}{
		{"known property", NewIncome(date.New(2025, 7, 1), "p1", "rent", usd(100)), true},
		{"unknown property", NewIncome(date.New(2025, 7, 1), "p9", "rent", usd(100)), false},
		{"missing date", NewIncome(date.Date{}, "p1", "rent", usd(100)), false},
		{"negative amount", NewExpense(date.New(2025, 7, 1), "p1", "repairs", usd(-10)), false},
		{"bad frequency", NewExpense(date.New(2025, 7, 1), "p1", "repairs", usd(10)).Recurring("weekly"), false},
		{"good frequency", NewExpense(date.New(2025, 7, 1), "p1", "repairs", usd(10)).Recurring("monthly"), true},
		{"loan without id", NewSetLoan(date.New(2025, 7, 1), "p1", Loan{Payment: usd(900)}), false},
		{"negative rate", NewSetOperatingExpenses(date.New(2025, 7, 1), "p1", OperatingExpenses{CapexRate: R(-0.1)}), false},
	}
	for _, tc := range tests {
		err := l.Validate(tc.entry)
		if tc.valid && err != nil {
			t.Errorf("%s: got error %v, want none", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: got no error, want one", tc.name)
		}
	}
}
