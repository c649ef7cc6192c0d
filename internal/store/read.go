package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack/internal/ledger"
)

// rangeConditions appends inclusive date(data) bounds for r to the WHERE
// conditions. Comparing on date(data) keeps date-with-time values filtering
// correctly by calendar day. Either bound may be absent independently.
func rangeConditions(conds []string, params []any, r ledger.DateRange) ([]string, []any) {
	if r.From != nil {
		conds = append(conds, "date(data) >= ?")
		params = append(params, ledger.FormatDate(*r.From))
	}
	if r.To != nil {
		conds = append(conds, "date(data) <= ?")
		params = append(params, ledger.FormatDate(*r.To))
	}
	return conds, params
}

// Totals returns the sum of amounts per kind within the inclusive range.
// A kind with no matching rows is absent from the result entirely.
func (s *Store) Totals(ctx context.Context, r ledger.DateRange) (map[ledger.Kind]decimal.Decimal, error) {
	query := `SELECT tipo, SUM(valor) FROM transacoes`

	conds, params := rangeConditions(nil, nil, r)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY tipo"

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[ledger.Kind]decimal.Decimal)
	for rows.Next() {
		var kind string
		var sum sql.NullFloat64
		if err := rows.Scan(&kind, &sum); err != nil {
			return nil, fmt.Errorf("scan totals: %w", err)
		}
		// SUM can only be NULL if every valor in the group were NULL, which
		// the NOT NULL column rules out. The coalesce to zero is kept anyway.
		totals[ledger.Kind(kind)] = decimal.NewFromFloat(sum.Float64)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate totals: %w", err)
	}

	return totals, nil
}

// ListTransactions returns all rows within the inclusive range, most recent
// first, ties broken by larger id first. Description is coalesced to "".
//
// Returns an empty slice (not nil) if no rows match.
func (s *Store) ListTransactions(ctx context.Context, r ledger.DateRange) ([]ledger.Transaction, error) {
	query := `
		SELECT id, data, tipo, valor, COALESCE(descricao, '')
		FROM transacoes`

	conds, params := rangeConditions(nil, nil, r)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date(data) DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	// Return empty slice instead of nil
	if txs == nil {
		txs = []ledger.Transaction{}
	}

	return txs, nil
}

// RevenueByDescription returns total revenue grouped by description within
// the inclusive range, largest total first. Rows without a description
// group together under "". The description tiebreak keeps equal totals in
// a deterministic order.
func (s *Store) RevenueByDescription(ctx context.Context, r ledger.DateRange) ([]ledger.DescriptionTotal, error) {
	query := `
		SELECT COALESCE(descricao, ''), SUM(valor) AS total
		FROM transacoes
		WHERE tipo = 'revenue'`

	conds, params := rangeConditions(nil, nil, r)
	if len(conds) > 0 {
		query += " AND " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY descricao ORDER BY total DESC, descricao ASC"

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query revenue by description: %w", err)
	}
	defer rows.Close()

	var report []ledger.DescriptionTotal
	for rows.Next() {
		var row ledger.DescriptionTotal
		var total float64
		if err := rows.Scan(&row.Description, &total); err != nil {
			return nil, fmt.Errorf("scan revenue by description: %w", err)
		}
		row.Total = decimal.NewFromFloat(total)
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue by description: %w", err)
	}

	if report == nil {
		report = []ledger.DescriptionTotal{}
	}

	return report, nil
}

// scanTransaction reads one listing row. Stored dates are ISO calendar
// dates; a date-with-time value is truncated to its day portion.
func scanTransaction(rows *sql.Rows) (ledger.Transaction, error) {
	var tx ledger.Transaction
	var rawDate string
	var amount float64

	if err := rows.Scan(&tx.ID, &rawDate, &tx.Kind, &amount, &tx.Description); err != nil {
		return ledger.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	if len(rawDate) > 10 {
		rawDate = rawDate[:10]
	}
	date, err := ledger.ParseISODate(rawDate)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	tx.Date = date
	tx.Amount = decimal.NewFromFloat(amount)
	return tx, nil
}
