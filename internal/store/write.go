package store

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/ledger"
)

// Insert appends a transaction row. The statement is its own atomic unit;
// there is no batching and no explicit transaction boundary.
//
// A nil Description is stored as NULL. Constraint violations (e.g. an
// invalid kind reaching the CHECK constraint) propagate unmodified.
func (s *Store) Insert(ctx context.Context, rec ledger.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transacoes (data, tipo, valor, descricao)
		VALUES (?, ?, ?, ?)
	`,
		ledger.FormatDate(rec.Date),
		string(rec.Kind),
		rec.Amount.InexactFloat64(),
		rec.Description,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

// Delete removes the row with the given identifier and reports whether a
// row was actually removed. Deleting a nonexistent id is a legitimate
// non-error outcome, signalled by the boolean.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transacoes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete transaction: rows affected: %w", err)
	}

	return affected > 0, nil
}
