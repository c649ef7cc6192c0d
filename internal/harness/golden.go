package harness

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/fintrack/fintrack/internal/ledger"
)

// Snapshot renders the final listing in a canonical line format for golden
// comparison. Amounts use the plain decimal form; an absent description
// renders as an empty value.
func Snapshot(txs []ledger.Transaction) []byte {
	var buf bytes.Buffer
	for _, tx := range txs {
		fmt.Fprintf(&buf, "id=%d date=%s kind=%s amount=%s description=%s\n",
			tx.ID,
			ledger.FormatDate(tx.Date),
			tx.Kind,
			tx.Amount.String(),
			tx.Description,
		)
	}
	return buf.Bytes()
}

// AssertGolden compares the scenario's final listing against the golden
// file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, s *Scenario, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, Snapshot(result.Transactions))
}
