package rentfolio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rentfolio/rentfolio/date"
)

const sampleLedger = `{"command":"declare-property","date":"2025-01-01","property":"p1","name":"Maple Duplex","address":"12 Maple St","strategy":"brrrr"}
{"command":"set-rent","date":"2025-07-01","property":"p1","currency":"USD","monthlyRent":2000,"petRent":50}
{"command":"set-expenses","date":"2025-07-01","property":"p1","currency":"USD","propertyTaxes":2400,"managementRate":0.1,"capexRate":0.05}
{"command":"set-loan","date":"2025-02-01","property":"p1","loan":"primary","lender":"First Bank","currency":"USD","principal":200000,"rate":0.06,"termMonths":360,"payment":1199.1,"status":"active"}
{"command":"income","date":"2025-07-03","property":"p1","category":"rent","currency":"USD","amount":1000}
{"command":"expense","date":"2025-07-05","property":"p1","category":"cleaning","currency":"USD","amount":90,"recurring":true,"frequency":"monthly"}
`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatal(err)
	}

	p := l.Property("p1")
	if p == nil || p.Name != "Maple Duplex" || p.Strategy != "brrrr" {
		t.Fatalf("got property %+v, want Maple Duplex/brrrr", p)
	}
	ri := l.RentalIncome("p1")
	if ri == nil || !ri.MonthlyRent.Equal(usd(2000)) || !ri.PetRent.Equal(usd(50)) {
		t.Errorf("got rental income %+v", ri)
	}
	oe := l.OperatingExpenses("p1")
	if oe == nil || !oe.PropertyTaxes.Equal(usd(2400)) || !oe.ManagementRate.Equal(R(0.1)) {
		t.Errorf("got operating expenses %+v", oe)
	}
	loans := l.Loans("p1")
	if len(loans) != 1 || loans[0].Lender != "First Bank" || loans[0].TermMonths != 360 {
		t.Errorf("got loans %+v", loans)
	}
	txs := l.Transactions("p1")
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].Type() != Income || !txs[0].Amount.Equal(usd(1000)) {
		t.Errorf("got first transaction %+v", txs[0])
	}
	if !txs[1].IsRecurring || txs[1].RecurrenceFrequency != "monthly" {
		t.Errorf("got second transaction %+v", txs[1])
	}
}

func TestDecodeLedgerTolerantAmounts(t *testing.T) {
	// Amounts recorded as strings, with currency symbols and separators, or
	// plain garbage parse to their value or to zero, never to an error.
	in := `{"command":"income","date":"2025-07-01","property":"p1","category":"rent","currency":"USD","amount":"$1,250.50"}
{"command":"income","date":"2025-07-02","property":"p1","category":"rent","currency":"USD","amount":"n/a"}
`
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	txs := l.Transactions("p1")
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if want := usd(1250.50); !txs[0].Amount.Equal(want) {
		t.Errorf("got %v, want %v", txs[0].Amount, want)
	}
	if !txs[1].Amount.IsZero() {
		t.Errorf("got %v for an unparsable amount, want 0", txs[1].Amount)
	}
}

func TestDecodeLedgerErrors(t *testing.T) {
	tests := []struct{ name, in string }{
		{"unknown command", `{"command":"frobnicate","date":"2025-07-01"}`},
		{"not json", `hello`},
	}
	for _, tc := range tests {
		if _, err := DecodeLedger(strings.NewReader(tc.in)); err == nil {
			t.Errorf("%s: got nil error", tc.name)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	again, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("could not decode re-encoded ledger: %v", err)
	}
	if got, want := again.OldestEntryDate(), date.New(2025, 1, 1); got != want {
		t.Errorf("got oldest date %v, want %v", got, want)
	}
	m1, err := l.OperatingMetrics("p1", Money{})
	if err != nil {
		t.Fatal(err)
	}
	m2, err := again.OperatingMetrics("p1", Money{})
	if err != nil {
		t.Fatal(err)
	}
	if !m1.NetCashFlow.Equal(m2.NetCashFlow) {
		t.Errorf("round trip changed net cash flow: %v != %v", m1.NetCashFlow, m2.NetCashFlow)
	}
}
