// Package stessa imports transactions from a Stessa-style JSON export.
//
// The export is a single JSON document with a "transactions" array of rows.
// Monetary fields may arrive as numbers or as formatted strings ("$1,234.56");
// the parse is tolerant and unparsable amounts import as zero.
package stessa

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/date"
	"github.com/shopspring/decimal"
)

// Import reads a Stessa export and converts every row into a ledger
// transaction for the given property. Rows without a parsable date are
// skipped and reported in the returned count of skipped rows.
func Import(r io.Reader, propertyID, currency string) (txs []rentfolio.Transaction, skipped int, err error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, 0, fmt.Errorf("could not decode export: %w", err)
	}

	// jsonpath returns an empty answer, not an error, when the key is
	// absent: check for it first so a foreign document is rejected.
	if obj, ok := jobj.(map[string]any); !ok || obj["transactions"] == nil {
		return nil, 0, fmt.Errorf("could not find transactions in export")
	}

	path := "$.transactions[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, 0, fmt.Errorf("could not find transactions at %q: %w", path, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer: wrap a single row into a list.
		rows = []any{jval}
	}

	for _, jrow := range rows {
		row, ok := jrow.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		tx, ok := importRow(row, propertyID, currency)
		if !ok {
			skipped++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, skipped, nil
}

func importRow(row map[string]any, propertyID, currency string) (rentfolio.Transaction, bool) {
	day, err := date.Parse(str(row, "date", "transactionDate"))
	if err != nil {
		return rentfolio.Transaction{}, false
	}

	amount := rentfolio.M(amountOf(row, "amount"), currency)
	category := strings.ToLower(str(row, "category"))

	var tx rentfolio.Transaction
	if strings.EqualFold(str(row, "type"), "income") {
		tx = rentfolio.NewIncome(day, propertyID, category, amount)
	} else {
		tx = rentfolio.NewExpense(day, propertyID, category, amount)
	}
	tx.Subcategory = strings.ToLower(str(row, "subcategory", "subCategory"))
	tx.Description = str(row, "description", "memo")

	if frequency := strings.ToLower(str(row, "recurrenceFrequency", "frequency")); frequency != "" {
		tx = tx.Recurring(frequency)
	} else if truthy(row["isRecurring"]) {
		tx = tx.Recurring("monthly")
	}
	if truthy(row["isExcluded"]) || truthy(row["excluded"]) {
		tx = tx.Excluded()
	}
	return tx, true
}

// str returns the first present string value among the given keys.
func str(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := row[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// amountOf reads a monetary field that may be a number or a formatted string.
func amountOf(row map[string]any, key string) decimal.Decimal {
	switch v := row[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		return rentfolio.ParseAmount(v)
	default:
		return decimal.Zero
	}
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
