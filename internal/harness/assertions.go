package harness

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack/internal/ledger"
	"github.com/fintrack/fintrack/internal/store"
)

// Verify checks the scenario's Expect block against the store and the
// captured result.
func Verify(t *testing.T, s *Scenario, st *store.Store, result *Result) {
	t.Helper()
	ctx := context.Background()

	if s.Expect.Count != nil {
		assert.Len(t, result.Transactions, *s.Expect.Count, "transaction count")
	}

	if s.Expect.Totals != nil {
		totals, err := st.Totals(ctx, ledger.DateRange{})
		require.NoError(t, err)

		assert.Len(t, totals, len(s.Expect.Totals), "unexpected kinds in totals: %v", totals)
		for kind, want := range s.Expect.Totals {
			got, ok := totals[ledger.Kind(kind)]
			if !ok {
				t.Errorf("totals missing kind %q", kind)
				continue
			}
			assert.True(t, got.Equal(decimal.RequireFromString(want)),
				"totals[%q] = %s, want %s", kind, got, want)
		}
	}

	if s.Expect.Report != nil {
		report, err := st.RevenueByDescription(ctx, ledger.DateRange{})
		require.NoError(t, err)

		require.Len(t, report, len(s.Expect.Report), "report rows: %+v", report)
		for i, want := range s.Expect.Report {
			assert.Equal(t, want.Description, report[i].Description, "report row %d description", i)
			assert.True(t, report[i].Total.Equal(decimal.RequireFromString(want.Total)),
				"report row %d total = %s, want %s", i, report[i].Total, want.Total)
		}
	}
}
