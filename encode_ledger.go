package rentfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// flexDecimal decodes a monetary or rate figure that may arrive as a JSON
// number or as a numeric string. The parse is tolerant by contract: missing
// or unparsable input is zero, never an error.
type flexDecimal struct {
	d decimal.Decimal
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		f.d = ParseAmount(s)
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return nil
	}
	f.d = d
	return nil
}

// rentCmd is a specialized struct to read a set-rent entry with flat amounts.
type rentCmd struct {
	baseEntry
	Currency             string      `json:"currency"`
	MonthlyRent          flexDecimal `json:"monthlyRent"`
	OtherIncome          flexDecimal `json:"otherIncome"`
	ParkingIncome        flexDecimal `json:"parkingIncome"`
	LaundryIncome        flexDecimal `json:"laundryIncome"`
	PetRent              flexDecimal `json:"petRent"`
	StorageIncome        flexDecimal `json:"storageIncome"`
	UtilityReimbursement flexDecimal `json:"utilityReimbursement"`
}

func (c rentCmd) record() RentalIncome {
	m := func(f flexDecimal) Money { return M(f.d, c.Currency) }
	return RentalIncome{
		MonthlyRent:          m(c.MonthlyRent),
		OtherIncome:          m(c.OtherIncome),
		ParkingIncome:        m(c.ParkingIncome),
		LaundryIncome:        m(c.LaundryIncome),
		PetRent:              m(c.PetRent),
		StorageIncome:        m(c.StorageIncome),
		UtilityReimbursement: m(c.UtilityReimbursement),
	}
}

// expensesCmd is a specialized struct to read a set-expenses entry.
type expensesCmd struct {
	baseEntry
	Currency                 string      `json:"currency"`
	PropertyTaxes            flexDecimal `json:"propertyTaxes"`
	Insurance                flexDecimal `json:"insurance"`
	HOAFees                  flexDecimal `json:"hoaFees"`
	Utilities                flexDecimal `json:"utilities"`
	LawnCare                 flexDecimal `json:"lawnCare"`
	PestControl              flexDecimal `json:"pestControl"`
	OtherExpenses            flexDecimal `json:"otherExpenses"`
	OtherExpensesDescription string      `json:"otherExpensesDescription"`
	ManagementFlatFee        flexDecimal `json:"managementFlatFee"`
	ManagementRate           flexDecimal `json:"managementRate"`
	CapexRate                flexDecimal `json:"capexRate"`
}

func (c expensesCmd) record() OperatingExpenses {
	m := func(f flexDecimal) Money { return M(f.d, c.Currency) }
	return OperatingExpenses{
		PropertyTaxes:            m(c.PropertyTaxes),
		Insurance:                m(c.Insurance),
		HOAFees:                  m(c.HOAFees),
		Utilities:                m(c.Utilities),
		LawnCare:                 m(c.LawnCare),
		PestControl:              m(c.PestControl),
		OtherExpenses:            m(c.OtherExpenses),
		OtherExpensesDescription: c.OtherExpensesDescription,
		ManagementFlatFee:        m(c.ManagementFlatFee),
		ManagementRate:           R(c.ManagementRate.d),
		CapexRate:                R(c.CapexRate.d),
	}
}

// loanCmd is a specialized struct to read a set-loan entry.
type loanCmd struct {
	baseEntry
	LoanID     string      `json:"loan"`
	Lender     string      `json:"lender"`
	Currency   string      `json:"currency"`
	Principal  flexDecimal `json:"principal"`
	Rate       flexDecimal `json:"rate"`
	TermMonths int         `json:"termMonths"`
	Payment    flexDecimal `json:"payment"`
	Status     string      `json:"status"`
}

func (c loanCmd) record() Loan {
	return Loan{
		LoanID:     c.LoanID,
		Lender:     c.Lender,
		Principal:  M(c.Principal.d, c.Currency),
		AnnualRate: R(c.Rate.d),
		TermMonths: c.TermMonths,
		Payment:    M(c.Payment.d, c.Currency),
		Status:     c.Status,
	}
}

// transactionCmd is a specialized struct to read income and expense entries.
type transactionCmd struct {
	baseEntry
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Description string      `json:"description"`
	Currency    string      `json:"currency"`
	Amount      flexDecimal `json:"amount"`
	Recurring   bool        `json:"recurring"`
	Frequency   string      `json:"frequency"`
	Excluded    bool        `json:"excluded"`
}

func (c transactionCmd) record() Transaction {
	return Transaction{
		baseEntry:           c.baseEntry,
		Category:            c.Category,
		Subcategory:         c.Subcategory,
		Description:         c.Description,
		Amount:              M(c.Amount.d, c.Currency),
		IsRecurring:         c.Recurring,
		RecurrenceFrequency: c.Frequency,
		IsExcluded:          c.Excluded,
	}
}

// DecodeLedger decodes entries from a stream of JSONL data, decodes each line
// into the appropriate entry struct, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var decoded Entry

		switch identifier.Command {
		case CmdProperty:
			var temp struct {
				baseEntry
				Name     string `json:"name"`
				Address  string `json:"address"`
				Strategy string `json:"strategy"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = DeclareProperty{baseEntry: temp.baseEntry, Name: temp.Name, Address: temp.Address, Strategy: temp.Strategy}
		case CmdRent:
			var temp rentCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = SetRentalIncome{baseEntry: temp.baseEntry, Rent: temp.record()}
		case CmdExpenses:
			var temp expensesCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = SetOperatingExpenses{baseEntry: temp.baseEntry, Expenses: temp.record()}
		case CmdLoan:
			var temp loanCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = SetLoan{baseEntry: temp.baseEntry, Loan: temp.record()}
		case CmdIncome, CmdExpense:
			var temp transactionCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = temp.record()
		default:
			return nil, fmt.Errorf("unknown command %q in line %q", identifier.Command, string(lineBytes))
		}

		ledger.Append(decoded)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeEntry writes a single entry as one JSONL line.
func EncodeEntry(w io.Writer, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not encode %s entry: %w", e.What(), err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical form: one entry per line,
// in chronological order, with a stable field order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for e := range l.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
