package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rentfolio/rentfolio"
)

// DailyMarkdown renders the daily projected-versus-actual series of a
// property.
func DailyMarkdown(r *rentfolio.DailyMetricsData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Report for %s", r.PropertyID))

	if !r.HasProjectedData {
		doc.PlainText("No structured records to project from; actuals only.")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Projected", "Actual Income", "Actual Expenses", "Variance"},
	}
	for _, day := range r.Days {
		projected, variance := "-", "-"
		if day.Projected != nil {
			projected = day.Projected.CashFlow.String()
		}
		if day.Variance != nil {
			variance = day.Variance.CashFlow.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			day.Day.String(),
			projected,
			day.Actual.Income.SignedString(),
			day.Actual.Expenses.SignedString(),
			variance,
		})
	}
	doc.Table(table)

	return doc.String()
}
