package rentfolio

import "strings"

// ReconciledData is the outcome of merging structured records with ledger
// transactions: the input of the metric calculator.
type ReconciledData struct {
	Income    Money
	LineItems []LineItem
}

// Reconcile supplements structured data with recorded transactions.
//
// Income from transactions is a fallback only: it applies when no structured
// income exists. Recurring monthly expense transactions are grouped by
// category and appended to the structured line items, skipping the management
// category when the structured record already covers it, and skipping loan
// payments since those are financing costs, not operating expenses.
func Reconcile(sd StructuredData, transactions []Transaction) ReconciledData {
	rd := ReconciledData{Income: sd.Income, LineItems: sd.LineItems}

	if !sd.HasIncome {
		var income Money
		for _, t := range transactions {
			if t.IsExcluded || t.Type() != Income {
				continue
			}
			income = income.Add(t.Amount)
		}
		rd.Income = income
	}

	sums := make(map[string]Money)
	var order []string
	for _, t := range transactions {
		if t.IsExcluded || t.Type() != Expense {
			continue
		}
		if !t.IsRecurring || !strings.EqualFold(t.RecurrenceFrequency, "monthly") {
			continue
		}
		category := strings.ToLower(t.Category)
		if sd.HasManagement && category == "management" {
			continue
		}
		if isLoanPayment(t) {
			continue
		}
		if _, seen := sums[category]; !seen {
			order = append(order, category)
		}
		sums[category] = sums[category].Add(t.Amount)
	}
	for _, category := range order {
		rd.LineItems = append(rd.LineItems, LineItem{
			ID:     category,
			Label:  titleCase(category),
			Amount: sums[category],
		})
	}
	return rd
}

// isLoanPayment reports whether a transaction records a loan or mortgage
// payment. The substring match over free text is a known heuristic carried
// over from the recording conventions, not a guaranteed classifier.
func isLoanPayment(t Transaction) bool {
	category := strings.ToLower(t.Category)
	subcategory := strings.ToLower(t.Subcategory)
	if category == "other" && subcategory == "loan_payment" {
		return true
	}
	haystack := category + " " + subcategory + " " + strings.ToLower(t.Description)
	for _, needle := range []string{"loan", "mortgage", "heloc"} {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// titleCase renders a recorded category as a display label: underscores become
// spaces and each word is capitalized.
func titleCase(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
