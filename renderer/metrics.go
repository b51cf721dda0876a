// Package renderer renders reports to markdown.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rentfolio/rentfolio"
)

// MetricsMarkdown renders the operating metrics of one property.
func MetricsMarkdown(m *rentfolio.OperatingCoreMetrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Operating Metrics for %s", m.PropertyID))

	if len(m.FixedExpenses) > 0 {
		doc.H2("Fixed Expenses")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Expense", "Monthly"},
		}
		for _, it := range m.FixedExpenses {
			table.Rows = append(table.Rows, []string{it.Label, it.Amount.String()})
		}
		doc.Table(table)
	}

	doc.H2("Monthly Figures")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Gross Income", m.GrossIncome.String()},
			{"Fixed Expenses", m.TotalFixedExpenses.String()},
			{"CapEx Reserve", m.CapexReserve.String()},
			{md.Bold("NOI"), md.Bold(m.NOI.String())},
			{"Debt Service", m.DebtService.String()},
			{md.Bold("Net Cash Flow"), md.Bold(m.NetCashFlow.SignedString())},
			{"Margin", m.Margin.SignedString()},
		},
	})

	return doc.String()
}
