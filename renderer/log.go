package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/rentfolio/rentfolio"
)

// TransactionsMarkdown renders a transaction list as a markdown table.
func TransactionsMarkdown(txs []rentfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Property", "Type", "Category", "Amount"},
	}
	for _, t := range txs {
		amount := t.Amount.String()
		if t.Type() == rentfolio.Expense {
			amount = t.Amount.Neg().SignedString()
		}
		category := t.Category
		if t.IsExcluded {
			category += " (excluded)"
		}
		table.Rows = append(table.Rows, []string{
			t.When().String(),
			t.PropertyID,
			string(t.Type()),
			category,
			amount,
		})
	}
	doc.Table(table)

	return doc.String()
}
