package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rentfolio/rentfolio"
)

// SummaryMarkdown renders the portfolio summary.
func SummaryMarkdown(s *rentfolio.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Day))

	if len(s.Lines) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Property", "Gross Income", "NOI", "Cash Flow", "Margin"},
		}
		for _, m := range s.Lines {
			table.Rows = append(table.Rows, []string{
				m.PropertyID,
				m.GrossIncome.String(),
				m.NOI.String(),
				m.NetCashFlow.SignedString(),
				m.Margin.SignedString(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Gross Income", s.TotalGrossIncome.String()},
			{"Fixed Expenses", s.TotalFixedExpenses.String()},
			{"CapEx Reserve", s.TotalCapexReserve.String()},
			{md.Bold("NOI"), md.Bold(s.TotalNOI.String())},
			{"Debt Service", s.TotalDebtService.String()},
			{md.Bold("Net Cash Flow"), md.Bold(s.TotalNetCashFlow.SignedString())},
			{"Margin", s.Margin.SignedString()},
		},
	})

	return doc.String()
}
