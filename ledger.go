package rentfolio

import (
	"fmt"
	"iter"
	"sort"

	"github.com/rentfolio/rentfolio/date"
)

// Ledger represents the list of all recorded entries.
//
// In a Ledger entries are always in chronological order. Structured records
// (rent, expenses, loans) are snapshots: the most recent entry per property
// (per loan id for loans) is the one in effect.
type Ledger struct {
	entries []Entry

	properties map[string]DeclareProperty
	rents      map[string]SetRentalIncome
	expenses   map[string]SetOperatingExpenses
	loans      map[string]map[string]SetLoan // property id -> loan id -> latest entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		properties: make(map[string]DeclareProperty),
		rents:      make(map[string]SetRentalIncome),
		expenses:   make(map[string]SetOperatingExpenses),
		loans:      make(map[string]map[string]SetLoan),
	}
}

// Append appends entries to this ledger and maintains the chronological order.
func (l *Ledger) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
	l.processEntries(entries...)
	l.stableSort()
}

// Validate checks an entry for correctness against the current ledger state.
func (l *Ledger) Validate(e Entry) error {
	if err := e.Validate(l); err != nil {
		return fmt.Errorf("invalid %s entry on %v: %w", e.What(), e.When(), err)
	}
	return nil
}

// processEntries maintains the structured-record indexes.
func (l *Ledger) processEntries(entries ...Entry) {
	for _, e := range entries {
		switch v := e.(type) {
		case DeclareProperty:
			l.properties[v.PropertyID] = v
		case SetRentalIncome:
			if prev, ok := l.rents[v.PropertyID]; !ok || !v.Date.Before(prev.Date) {
				l.rents[v.PropertyID] = v
			}
		case SetOperatingExpenses:
			if prev, ok := l.expenses[v.PropertyID]; !ok || !v.Date.Before(prev.Date) {
				l.expenses[v.PropertyID] = v
			}
		case SetLoan:
			byID := l.loans[v.PropertyID]
			if byID == nil {
				byID = make(map[string]SetLoan)
				l.loans[v.PropertyID] = byID
			}
			if prev, ok := byID[v.Loan.LoanID]; !ok || !v.Date.Before(prev.Date) {
				byID[v.Loan.LoanID] = v
			}
		}
	}
}

// stableSort keeps entries in chronological order, preserving the recording
// order of same-day entries.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].When().Before(l.entries[j].When())
	})
}

// Property returns the property declared with this id, or nil if unknown.
func (l *Ledger) Property(id string) *Property {
	d, ok := l.properties[id]
	if !ok {
		return nil
	}
	return &Property{ID: d.PropertyID, Name: d.Name, Address: d.Address, Strategy: d.Strategy}
}

// Properties returns an iterator over all declared properties, sorted by id.
func (l *Ledger) Properties() iter.Seq[Property] {
	ids := make([]string, 0, len(l.properties))
	for id := range l.properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return func(yield func(Property) bool) {
		for _, id := range ids {
			if !yield(*l.Property(id)) {
				return
			}
		}
	}
}

// RentalIncome returns the rental income record in effect for the property,
// or nil when none was recorded.
func (l *Ledger) RentalIncome(propertyID string) *RentalIncome {
	e, ok := l.rents[propertyID]
	if !ok {
		return nil
	}
	ri := e.Rent
	return &ri
}

// OperatingExpenses returns the operating expenses record in effect for the
// property, or nil when none was recorded.
func (l *Ledger) OperatingExpenses(propertyID string) *OperatingExpenses {
	e, ok := l.expenses[propertyID]
	if !ok {
		return nil
	}
	oe := e.Expenses
	return &oe
}

// Loans returns the loans in effect for the property, sorted by loan id.
func (l *Ledger) Loans(propertyID string) []Loan {
	byID := l.loans[propertyID]
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	loans := make([]Loan, 0, len(ids))
	for _, id := range ids {
		loans = append(loans, byID[id].Loan)
	}
	return loans
}

// Transactions returns the transactions of the property in chronological order.
// An empty property id selects the whole portfolio.
func (l *Ledger) Transactions(propertyID string) []Transaction {
	var txs []Transaction
	for _, e := range l.entries {
		t, ok := e.(Transaction)
		if !ok {
			continue
		}
		if propertyID != "" && t.PropertyID != propertyID {
			continue
		}
		txs = append(txs, t)
	}
	return txs
}

// Entries returns an iterator over all entries in chronological order.
func (l *Ledger) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// OldestEntryDate returns the date of the oldest entry, or the zero date for
// an empty ledger.
func (l *Ledger) OldestEntryDate() date.Date {
	if len(l.entries) == 0 {
		return date.Date{}
	}
	return l.entries[0].When()
}
