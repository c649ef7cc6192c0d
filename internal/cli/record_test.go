package cli

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommand_InsertsAndLists(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "record", "register 150,00 of revenue on 12/05/2024 with description rent")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded")
	assert.Contains(t, out, "150,00")
	assert.Contains(t, out, "rent")

	out, err = execute(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-12")
	assert.Contains(t, out, "revenue")
	assert.Contains(t, out, "rent")
}

func TestRecordCommand_NoMatchExitsWithFailure(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "record", "hello world")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "no_match")

	// Nothing must have been inserted
	out, err = execute(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions found.")
}

func TestRecordCommand_JSONOutput(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "record", "register 1.234,56 of expense on 01-02-2024", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	_, err = uuid.Parse(resp.TraceID)
	require.NoError(t, err, "trace_id should be a valid UUID")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object: %v", resp.Data)
	assert.Equal(t, "2024-02-01", data["date"])
	assert.Equal(t, "expense", data["kind"])
	assert.Equal(t, "1234.56", data["amount"])
}

func TestRecordCommand_NoMatchJSONOutput(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "record", "hello world", "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "no_match", resp.Error.Code)
}
