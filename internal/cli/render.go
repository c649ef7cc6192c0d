package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack/internal/ledger"
)

// transactionRow is the JSON wire shape for one listed transaction.
type transactionRow struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// reportRow is the JSON wire shape for one revenue-by-description row.
type reportRow struct {
	Description string `json:"description"`
	Total       string `json:"total"`
}

// recordPayload shapes a just-recorded transaction for JSON output.
func recordPayload(rec ledger.Record) transactionRow {
	row := transactionRow{
		Date:   ledger.FormatDate(rec.Date),
		Kind:   string(rec.Kind),
		Amount: rec.Amount.String(),
	}
	if rec.Description != nil {
		row.Description = *rec.Description
	}
	return row
}

// describeRecord renders a one-line human summary of a record.
func describeRecord(rec ledger.Record) string {
	s := fmt.Sprintf("%s of %s on %s", ledger.FormatAmount(rec.Amount), rec.Kind, ledger.FormatDate(rec.Date))
	if rec.Description != nil {
		s += fmt.Sprintf(" (%s)", *rec.Description)
	}
	return s
}

// transactionRows shapes listing results for JSON output.
func transactionRows(txs []ledger.Transaction) []transactionRow {
	rows := make([]transactionRow, len(txs))
	for i, tx := range txs {
		rows[i] = transactionRow{
			ID:          tx.ID,
			Date:        ledger.FormatDate(tx.Date),
			Kind:        string(tx.Kind),
			Amount:      tx.Amount.String(),
			Description: tx.Description,
		}
	}
	return rows
}

// renderTransactions writes the listing as an aligned text table.
func renderTransactions(w io.Writer, txs []ledger.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tKIND\tAMOUNT\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			tx.ID,
			ledger.FormatDate(tx.Date),
			tx.Kind,
			ledger.FormatAmount(tx.Amount),
			tx.Description,
		)
	}
	tw.Flush()
}

// renderTotals writes per-kind totals, kinds in alphabetical order for
// stable output.
func renderTotals(w io.Writer, totals map[ledger.Kind]decimal.Decimal) {
	if len(totals) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return
	}

	kinds := make([]string, 0, len(totals))
	for k := range totals {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range kinds {
		fmt.Fprintf(tw, "%s\t%s\n", k, ledger.FormatAmount(totals[ledger.Kind(k)]))
	}
	tw.Flush()
}

// totalsPayload shapes totals for JSON output, keyed by kind.
func totalsPayload(totals map[ledger.Kind]decimal.Decimal) map[string]string {
	payload := make(map[string]string, len(totals))
	for k, v := range totals {
		payload[string(k)] = v.String()
	}
	return payload
}

// renderReport writes the revenue-by-description report as a text table.
func renderReport(w io.Writer, report []ledger.DescriptionTotal) {
	if len(report) == 0 {
		fmt.Fprintln(w, "No revenue found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DESCRIPTION\tTOTAL")
	for _, row := range report {
		fmt.Fprintf(tw, "%s\t%s\n", row.Description, ledger.FormatAmount(row.Total))
	}
	tw.Flush()
}

// reportRows shapes the report for JSON output.
func reportRows(report []ledger.DescriptionTotal) []reportRow {
	rows := make([]reportRow, len(report))
	for i, r := range report {
		rows[i] = reportRow{Description: r.Description, Total: r.Total.String()}
	}
	return rows
}
