// Package rentfolio computes operating metrics for a portfolio of rental
// properties.
//
// The package is organized around a Ledger: a chronological list of entries
// recorded in a human-readable JSONL file. Entries are either structured
// records (a property declaration, its rental income, its operating expenses,
// its loans) or free-form transactions (income and expense lines).
//
// From those records the engine derives, per property:
//
//   - gross monthly income and itemized fixed expenses (ResolveStructured),
//   - a reconciliation of structured records with recorded transactions
//     (Reconcile),
//   - the operating core metrics: gross income, fixed expenses, CapEx
//     reserve, NOI, debt service, net cash flow and margin (Calculate),
//   - a daily projected-versus-actual series (NewDailyReport).
//
// Every stage is a pure function of its inputs: the engine performs no I/O,
// holds no state between calls, and is safe to invoke concurrently for
// different properties.
package rentfolio
