package rentfolio

import (
	"testing"

	"github.com/rentfolio/rentfolio/date"
)

var testDay = date.New(2025, 7, 15)

func TestReconcileIncomePrecedence(t *testing.T) {
	txs := []Transaction{
		NewIncome(testDay, "p1", "rent", usd(500)),
	}

	// Structured income wins outright, no additive blending.
	structured := StructuredData{Income: usd(2000), HasIncome: true, HasBasis: true}
	rd := Reconcile(structured, txs)
	if want := usd(2000); !rd.Income.Equal(want) {
		t.Errorf("got income %v, want %v", rd.Income, want)
	}

	// Without structured income, transactions are the fallback.
	rd = Reconcile(StructuredData{}, txs)
	if want := usd(500); !rd.Income.Equal(want) {
		t.Errorf("got fallback income %v, want %v", rd.Income, want)
	}
}

func TestReconcileExcludedTransactions(t *testing.T) {
	txs := []Transaction{
		NewIncome(testDay, "p1", "rent", usd(500)).Excluded(),
		NewExpense(testDay, "p1", "cleaning", usd(90)).Recurring("monthly").Excluded(),
	}
	rd := Reconcile(StructuredData{}, txs)
	if !rd.Income.IsZero() {
		t.Errorf("got income %v from an excluded transaction, want 0", rd.Income)
	}
	if len(rd.LineItems) != 0 {
		t.Errorf("got %d line items from excluded transactions, want 0", len(rd.LineItems))
	}
}

func TestReconcileRecurringMonthlyOnly(t *testing.T) {
	txs := []Transaction{
		NewExpense(testDay, "p1", "cleaning", usd(90)).Recurring("monthly"),
		NewExpense(testDay, "p1", "repairs", usd(400)),                       // one-off
		NewExpense(testDay, "p1", "landscaping", usd(120)).Recurring("quarterly"), // wrong frequency
	}
	rd := Reconcile(StructuredData{}, txs)
	if len(rd.LineItems) != 1 {
		t.Fatalf("got %d line items, want 1", len(rd.LineItems))
	}
	if got := rd.LineItems[0]; got.ID != "cleaning" || !got.Amount.Equal(usd(90)) {
		t.Errorf("got %+v, want cleaning of %v", got, usd(90))
	}
}

func TestReconcileManagementNotDoubleCounted(t *testing.T) {
	structured := StructuredData{
		LineItems:     []LineItem{{ID: "management", Label: "Management", Amount: usd(150)}},
		HasManagement: true,
		HasBasis:      true,
	}
	txs := []Transaction{
		NewExpense(testDay, "p1", "management", usd(200)).Recurring("monthly"),
	}
	rd := Reconcile(structured, txs)

	var management []Money
	for _, it := range rd.LineItems {
		if it.ID == "management" {
			management = append(management, it.Amount)
		}
	}
	if len(management) != 1 || !management[0].Equal(usd(150)) {
		t.Errorf("got management entries %v, want exactly one of %v", management, usd(150))
	}
}

func TestReconcileCategorySums(t *testing.T) {
	txs := []Transaction{
		NewExpense(testDay, "p1", "pool_service", usd(60)).Recurring("monthly"),
		NewExpense(testDay, "p1", "pool_service", usd(40)).Recurring("monthly"),
		NewExpense(testDay, "p1", "cleaning", usd(90)).Recurring("monthly"),
	}
	rd := Reconcile(StructuredData{}, txs)
	if len(rd.LineItems) != 2 {
		t.Fatalf("got %d line items, want 2", len(rd.LineItems))
	}
	if got := rd.LineItems[0]; got.Label != "Pool Service" || !got.Amount.Equal(usd(100)) {
		t.Errorf("got %+v, want Pool Service of %v", got, usd(100))
	}
	if got := rd.LineItems[1]; got.Label != "Cleaning" || !got.Amount.Equal(usd(90)) {
		t.Errorf("got %+v, want Cleaning of %v", got, usd(90))
	}
}

func TestIsLoanPayment(t *testing.T) {
	tests := []struct {
		category, subcategory, description string
		want                               bool
	}{
		{"loan", "", "", true},
		{"other", "loan_payment", "", true},
		{"financing", "", "Monthly Mortgage to First Bank", true},
		{"other", "", "HELOC draw repayment", true},
		{"cleaning", "", "", false},
		{"utilities", "water", "city water bill", false},
	}
	for _, tc := range tests {
		tx := NewExpense(testDay, "p1", tc.category, usd(100)).Recurring("monthly")
		tx.Subcategory = tc.subcategory
		tx.Description = tc.description
		if got := isLoanPayment(tx); got != tc.want {
			t.Errorf("isLoanPayment(%q,%q,%q)=%v, want %v", tc.category, tc.subcategory, tc.description, got, tc.want)
		}
	}
}

func TestReconcileSkipsLoanPayments(t *testing.T) {
	txs := []Transaction{
		NewExpense(testDay, "p1", "mortgage", usd(1200)).Recurring("monthly"),
		NewExpense(testDay, "p1", "cleaning", usd(90)).Recurring("monthly"),
	}
	rd := Reconcile(StructuredData{}, txs)
	if len(rd.LineItems) != 1 || rd.LineItems[0].ID != "cleaning" {
		t.Errorf("got %+v, want only the cleaning item", rd.LineItems)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"pool_service", "Pool Service"},
		{"cleaning", "Cleaning"},
		{"pest control", "Pest Control"},
	}
	for _, tc := range tests {
		if got := titleCase(tc.in); got != tc.want {
			t.Errorf("titleCase(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
