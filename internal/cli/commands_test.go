package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack/internal/config"
)

// seedLedger records the reference dataset through the CLI itself.
func seedLedger(t *testing.T, cfg *config.Config) {
	t.Helper()

	sentences := []string{
		"register 100 of revenue on 01/01/2024 with description A",
		"register 50 of revenue on 02/01/2024 with description A",
		"register 30 of expense on 01/01/2024",
	}
	for _, s := range sentences {
		_, err := execute(t, cfg, "record", s)
		require.NoError(t, err, "seeding %q", s)
	}
}

func TestAddCommand(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg,
		"add", "--date", "2024-05-12", "--kind", "revenue", "--amount", "150.00", "--description", "rent")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded")

	out, err = execute(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-12")
	assert.Contains(t, out, "rent")
}

func TestAddCommand_InvalidInputs(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"add", "--date", "12/05/2024", "--kind", "revenue", "--amount", "1"}},
		{"bad kind", []string{"add", "--date", "2024-05-12", "--kind", "salary", "--amount", "1"}},
		{"bad amount", []string{"add", "--date", "2024-05-12", "--kind", "revenue", "--amount", "abc"}},
		{"negative amount", []string{"add", "--date", "2024-05-12", "--kind", "revenue", "--amount=-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, cfg, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestDeleteCommand(t *testing.T) {
	cfg := testConfig(t)
	seedLedger(t, cfg)

	out, err := execute(t, cfg, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted transaction 1")

	// Deleting a never-issued id is a non-error outcome
	out, err = execute(t, cfg, "delete", "999999")
	require.NoError(t, err)
	assert.Contains(t, out, "No transaction with id 999999")

	_, err = execute(t, cfg, "delete", "not-a-number")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListCommand_OrderAndRange(t *testing.T) {
	cfg := testConfig(t)
	seedLedger(t, cfg)

	out, err := execute(t, cfg, "list")
	require.NoError(t, err)

	// Most recent first
	first := strings.Index(out, "2024-01-02")
	second := strings.Index(out, "2024-01-01")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "2024-01-02 row should be listed before 2024-01-01 rows")

	out, err = execute(t, cfg, "list", "--from", "2024-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-02")
	assert.NotContains(t, out, "2024-01-01")
}

func TestTotalsCommand(t *testing.T) {
	cfg := testConfig(t)
	seedLedger(t, cfg)

	out, err := execute(t, cfg, "totals", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "150", data["revenue"])
	assert.Equal(t, "30", data["expense"])
}

func TestTotalsCommand_RangeOmitsEmptyKind(t *testing.T) {
	cfg := testConfig(t)
	seedLedger(t, cfg)

	out, err := execute(t, cfg, "totals", "--from", "2024-01-02", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "50", data["revenue"])
	_, present := data["expense"]
	assert.False(t, present, "kind with no rows in range must be absent, not zero")
}

func TestReportCommand(t *testing.T) {
	cfg := testConfig(t)
	seedLedger(t, cfg)

	out, err := execute(t, cfg, "report", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	rows, ok := resp.Data.([]interface{})
	require.True(t, ok, "data should be an array: %v", resp.Data)
	require.Len(t, rows, 1)

	row, ok := rows[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A", row["description"])
	assert.Equal(t, "150", row["total"])
}

func TestReportCommand_TextOutput(t *testing.T) {
	cfg := testConfig(t)
	seedLedger(t, cfg)

	out, err := execute(t, cfg, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "150,00")
}
