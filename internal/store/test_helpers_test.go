package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack/internal/ledger"
)

// openTestStore creates a store backed by a fresh database in a temp dir.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// civil builds a UTC midnight date.
func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// record builds a ledger.Record; desc == "" means no description.
func record(date time.Time, kind ledger.Kind, amount string, desc string) ledger.Record {
	rec := ledger.Record{
		Date:   date,
		Kind:   kind,
		Amount: decimal.RequireFromString(amount),
	}
	if desc != "" {
		rec.Description = &desc
	}
	return rec
}

// between builds an inclusive date range; either side may be the zero time
// to leave that bound open.
func between(from, to time.Time) ledger.DateRange {
	var r ledger.DateRange
	if !from.IsZero() {
		r.From = &from
	}
	if !to.IsZero() {
		r.To = &to
	}
	return r
}
