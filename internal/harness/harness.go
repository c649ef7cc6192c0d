package harness

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/ledger"
	"github.com/fintrack/fintrack/internal/parser"
	"github.com/fintrack/fintrack/internal/store"
)

// Result holds the final state captured after a scenario run.
type Result struct {
	Transactions []ledger.Transaction
}

// Run executes the scenario's steps against st and captures the final
// listing. st should be a fresh store so surrogate ids start at 1.
func Run(ctx context.Context, s *Scenario, st *store.Store) (*Result, error) {
	for i, step := range s.Steps {
		if err := runStep(ctx, step, st); err != nil {
			return nil, fmt.Errorf("scenario %q step %d: %w", s.Name, i, err)
		}
	}

	txs, err := st.ListTransactions(ctx, ledger.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("scenario %q: list final state: %w", s.Name, err)
	}

	return &Result{Transactions: txs}, nil
}

func runStep(ctx context.Context, step Step, st *store.Store) error {
	if step.Record != "" {
		rec, ok := parser.Extract(step.Record)
		if step.NoMatch {
			if ok {
				return fmt.Errorf("sentence %q matched but was expected not to", step.Record)
			}
			return nil
		}
		if !ok {
			return fmt.Errorf("sentence %q did not match", step.Record)
		}
		return st.Insert(ctx, *rec)
	}

	removed, err := st.Delete(ctx, step.Delete)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("delete %d removed nothing", step.Delete)
	}
	return nil
}
