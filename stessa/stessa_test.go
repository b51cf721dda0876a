package stessa

import (
	"strings"
	"testing"

	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/date"
)

const sampleExport = `{
  "exportedAt": "2025-07-31T12:00:00Z",
  "transactions": [
    {"date": "2025-07-01", "type": "income", "category": "Rent", "amount": "$2,000.00"},
    {"date": "2025-07-05", "type": "expense", "category": "Cleaning", "amount": 90, "isRecurring": true},
    {"date": "2025-07-10", "type": "expense", "category": "Repairs", "subCategory": "Plumbing", "memo": "kitchen sink", "amount": "412.50", "isExcluded": true},
    {"date": "not a date", "type": "expense", "category": "Junk", "amount": 1},
    {"date": "2025-07-12", "type": "expense", "category": "Landscaping", "amount": 120, "frequency": "quarterly"}
  ]
}`

func TestImport(t *testing.T) {
	txs, skipped, err := Import(strings.NewReader(sampleExport), "p1", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 1 {
		t.Errorf("got %d skipped rows, want 1", skipped)
	}
	if len(txs) != 4 {
		t.Fatalf("got %d transactions, want 4", len(txs))
	}

	rent := txs[0]
	if rent.Type() != rentfolio.Income || !rent.Amount.Equal(rentfolio.M(2000, "USD")) {
		t.Errorf("got rent row %+v", rent)
	}
	if rent.When() != date.New(2025, 7, 1) || rent.Property() != "p1" {
		t.Errorf("got rent row on %v for %q", rent.When(), rent.Property())
	}

	cleaning := txs[1]
	if !cleaning.IsRecurring || cleaning.RecurrenceFrequency != "monthly" {
		t.Errorf("got cleaning row %+v, want recurring monthly", cleaning)
	}

	repairs := txs[2]
	if !repairs.IsExcluded || repairs.Subcategory != "plumbing" || repairs.Description != "kitchen sink" {
		t.Errorf("got repairs row %+v", repairs)
	}
	if !repairs.Amount.Equal(rentfolio.M(412.50, "USD")) {
		t.Errorf("got repairs amount %v, want 412.50", repairs.Amount)
	}

	landscaping := txs[3]
	if !landscaping.IsRecurring || landscaping.RecurrenceFrequency != "quarterly" {
		t.Errorf("got landscaping row %+v, want recurring quarterly", landscaping)
	}
}

func TestImportErrors(t *testing.T) {
	if _, _, err := Import(strings.NewReader("not json"), "p1", "USD"); err == nil {
		t.Errorf("got nil error for a malformed export")
	}
	if _, _, err := Import(strings.NewReader(`{"other": 1}`), "p1", "USD"); err == nil {
		t.Errorf("got nil error for an export without transactions")
	}
	// An empty transactions array is a valid, empty export.
	if txs, _, err := Import(strings.NewReader(`{"transactions": []}`), "p1", "USD"); err != nil || len(txs) != 0 {
		t.Errorf("got txs=%v err=%v for an empty export, want none and nil", txs, err)
	}
}
