package rentfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rentfolio/rentfolio/date"
)

// CommandType is a typed string for identifying ledger entry commands.
type CommandType string

// Command types used for identifying entries.
const (
	CmdProperty CommandType = "declare-property"
	CmdRent     CommandType = "set-rent"
	CmdExpenses CommandType = "set-expenses"
	CmdLoan     CommandType = "set-loan"
	CmdIncome   CommandType = "income"
	CmdExpense  CommandType = "expense"
)

// TransactionType distinguishes the two kinds of ledger transactions.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Entry defines the common interface for all ledger entries.
type Entry interface {
	What() CommandType  // What returns the command type of the entry.
	When() date.Date    // When returns the date on which the entry applies.
	Property() string   // Property returns the id of the property the entry belongs to.
	Validate(l *Ledger) error
}

type baseEntry struct {
	Command    CommandType `json:"command"`
	Date       date.Date   `json:"date"`
	PropertyID string      `json:"property"`
}

func (e baseEntry) What() CommandType { return e.Command }
func (e baseEntry) When() date.Date   { return e.Date }
func (e baseEntry) Property() string  { return e.PropertyID }

// validate checks the base entry fields and requires the referenced property
// to be declared.
func (e baseEntry) validate(l *Ledger) error {
	if e.Date.IsZero() {
		return errors.New("entry date is missing")
	}
	if e.PropertyID == "" {
		return errors.New("property id is missing")
	}
	if l.Property(e.PropertyID) == nil {
		return fmt.Errorf("property %q not declared in ledger", e.PropertyID)
	}
	return nil
}

// optionalAmount writes a monetary field only when present (non-zero).
func optionalAmount(w *jsonObjectWriter, key string, m Money) {
	if !m.IsZero() {
		w.Append(key, m.value)
	}
}

// optionalRate writes a rate field only when present (non-zero).
func optionalRate(w *jsonObjectWriter, key string, r Rate) {
	if !r.IsZero() {
		w.Append(key, r.value)
	}
}

// DeclareProperty declares a property in the ledger. All subsequent entries
// for the same property id refer to it.
type DeclareProperty struct {
	baseEntry
	Name     string
	Address  string
	Strategy string
}

// NewDeclareProperty creates a new DeclareProperty entry.
func NewDeclareProperty(day date.Date, id, name, address, strategy string) DeclareProperty {
	return DeclareProperty{
		baseEntry: baseEntry{Command: CmdProperty, Date: day, PropertyID: id},
		Name:      name,
		Address:   address,
		Strategy:  strategy,
	}
}

func (e DeclareProperty) Validate(l *Ledger) error {
	if e.Date.IsZero() {
		return errors.New("entry date is missing")
	}
	if e.PropertyID == "" {
		return errors.New("property id is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for DeclareProperty.
func (e DeclareProperty) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Optional("name", e.Name)
	w.Optional("address", e.Address)
	w.Optional("strategy", e.Strategy)
	return w.MarshalJSON()
}

// SetRentalIncome records the structured monthly income of a property.
// The most recent entry per property wins.
type SetRentalIncome struct {
	baseEntry
	Rent RentalIncome
}

// NewSetRentalIncome creates a new SetRentalIncome entry.
func NewSetRentalIncome(day date.Date, propertyID string, rent RentalIncome) SetRentalIncome {
	return SetRentalIncome{
		baseEntry: baseEntry{Command: CmdRent, Date: day, PropertyID: propertyID},
		Rent:      rent,
	}
}

func (e SetRentalIncome) Validate(l *Ledger) error { return e.baseEntry.validate(l) }

// MarshalJSON implements the json.Marshaler interface for SetRentalIncome.
func (e SetRentalIncome) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Optional("currency", e.Rent.MonthlyTotal().Currency())
	optionalAmount(&w, "monthlyRent", e.Rent.MonthlyRent)
	optionalAmount(&w, "otherIncome", e.Rent.OtherIncome)
	optionalAmount(&w, "parkingIncome", e.Rent.ParkingIncome)
	optionalAmount(&w, "laundryIncome", e.Rent.LaundryIncome)
	optionalAmount(&w, "petRent", e.Rent.PetRent)
	optionalAmount(&w, "storageIncome", e.Rent.StorageIncome)
	optionalAmount(&w, "utilityReimbursement", e.Rent.UtilityReimbursement)
	return w.MarshalJSON()
}

// SetOperatingExpenses records the structured recurring costs of a property.
// The most recent entry per property wins.
type SetOperatingExpenses struct {
	baseEntry
	Expenses OperatingExpenses
}

// NewSetOperatingExpenses creates a new SetOperatingExpenses entry.
func NewSetOperatingExpenses(day date.Date, propertyID string, oe OperatingExpenses) SetOperatingExpenses {
	return SetOperatingExpenses{
		baseEntry: baseEntry{Command: CmdExpenses, Date: day, PropertyID: propertyID},
		Expenses:  oe,
	}
}

func (e SetOperatingExpenses) Validate(l *Ledger) error {
	if err := e.baseEntry.validate(l); err != nil {
		return err
	}
	if e.Expenses.ManagementRate.IsNegative() || e.Expenses.CapexRate.IsNegative() {
		return errors.New("rates must not be negative")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for SetOperatingExpenses.
func (e SetOperatingExpenses) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	oe := e.Expenses
	w.EmbedFrom(e.baseEntry)
	w.Optional("currency", oe.PropertyTaxes.Add(oe.Insurance).Add(oe.HOAFees).Add(oe.Utilities).Add(oe.LawnCare).Add(oe.PestControl).Add(oe.OtherExpenses).Add(oe.ManagementFlatFee).Currency())
	optionalAmount(&w, "propertyTaxes", oe.PropertyTaxes)
	optionalAmount(&w, "insurance", oe.Insurance)
	optionalAmount(&w, "hoaFees", oe.HOAFees)
	optionalAmount(&w, "utilities", oe.Utilities)
	optionalAmount(&w, "lawnCare", oe.LawnCare)
	optionalAmount(&w, "pestControl", oe.PestControl)
	optionalAmount(&w, "otherExpenses", oe.OtherExpenses)
	w.Optional("otherExpensesDescription", oe.OtherExpensesDescription)
	optionalAmount(&w, "managementFlatFee", oe.ManagementFlatFee)
	optionalRate(&w, "managementRate", oe.ManagementRate)
	optionalRate(&w, "capexRate", oe.CapexRate)
	return w.MarshalJSON()
}

// SetLoan records the terms of a property loan. The most recent entry per
// (property, loan id) wins, so refinancing is a new entry with the same id.
type SetLoan struct {
	baseEntry
	Loan Loan
}

// NewSetLoan creates a new SetLoan entry.
func NewSetLoan(day date.Date, propertyID string, loan Loan) SetLoan {
	return SetLoan{
		baseEntry: baseEntry{Command: CmdLoan, Date: day, PropertyID: propertyID},
		Loan:      loan,
	}
}

func (e SetLoan) Validate(l *Ledger) error {
	if err := e.baseEntry.validate(l); err != nil {
		return err
	}
	if e.Loan.LoanID == "" {
		return errors.New("loan id is missing")
	}
	if e.Loan.TermMonths < 0 {
		return errors.New("loan term must not be negative")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for SetLoan.
func (e SetLoan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("loan", e.Loan.LoanID)
	w.Optional("lender", e.Loan.Lender)
	w.Optional("currency", e.Loan.Principal.Add(e.Loan.Payment).Currency())
	optionalAmount(&w, "principal", e.Loan.Principal)
	optionalRate(&w, "rate", e.Loan.AnnualRate)
	w.Optional("termMonths", e.Loan.TermMonths)
	optionalAmount(&w, "payment", e.Loan.Payment)
	w.Optional("status", e.Loan.Status)
	return w.MarshalJSON()
}

// Transaction is a free-form ledger line: an income or an expense.
// Transactions marked excluded contribute to nothing.
type Transaction struct {
	baseEntry
	Category            string
	Subcategory         string
	Description         string
	Amount              Money
	IsRecurring         bool
	RecurrenceFrequency string // "monthly", "quarterly" or "yearly" when recurring
	IsExcluded          bool
}

// NewIncome creates an income transaction.
func NewIncome(day date.Date, propertyID, category string, amount Money) Transaction {
	return Transaction{
		baseEntry: baseEntry{Command: CmdIncome, Date: day, PropertyID: propertyID},
		Category:  category,
		Amount:    amount,
	}
}

// NewExpense creates an expense transaction.
func NewExpense(day date.Date, propertyID, category string, amount Money) Transaction {
	return Transaction{
		baseEntry: baseEntry{Command: CmdExpense, Date: day, PropertyID: propertyID},
		Category:  category,
		Amount:    amount,
	}
}

// Recurring marks the transaction as recurring with the given frequency.
func (t Transaction) Recurring(frequency string) Transaction {
	t.IsRecurring = true
	t.RecurrenceFrequency = frequency
	return t
}

// Excluded marks the transaction as excluded from every calculation.
func (t Transaction) Excluded() Transaction {
	t.IsExcluded = true
	return t
}

// Type returns the transaction type derived from its command.
func (t Transaction) Type() TransactionType {
	if t.Command == CmdIncome {
		return Income
	}
	return Expense
}

func (t Transaction) Validate(l *Ledger) error {
	if err := t.baseEntry.validate(l); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if t.IsRecurring {
		switch strings.ToLower(t.RecurrenceFrequency) {
		case "monthly", "quarterly", "yearly":
		default:
			return fmt.Errorf("unknown recurrence frequency %q", t.RecurrenceFrequency)
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("category", t.Category)
	w.Optional("subcategory", t.Subcategory)
	w.Optional("description", t.Description)
	w.Optional("currency", t.Amount.Currency())
	w.Append("amount", t.Amount.value)
	w.Optional("recurring", t.IsRecurring)
	w.Optional("frequency", t.RecurrenceFrequency)
	w.Optional("excluded", t.IsExcluded)
	return w.MarshalJSON()
}
