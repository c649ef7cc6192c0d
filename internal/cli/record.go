package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fintrack/fintrack/internal/parser"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record <sentence>",
		Short: "Parse a natural-language command and record the transaction",
		Long: `Parse a natural-language transaction command and insert the extracted
record into the ledger.

The sentence must follow the fixed grammar (case-insensitive):

  [register [in the database]] [$] <amount> of revenue|expense on <DD/MM/YYYY> [with description <text>]

Amounts use "." as the thousands separator and "," as the decimal separator.
Dates also accept "-" between day, month and year.

A sentence that does not match the grammar is a normal negative outcome:
the command reports it and exits with code 1.

Examples:
  fintrack record "register 150,00 of revenue on 12/05/2024 with description rent"
  fintrack record "1.234,56 of expenses on 01-02-2024"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, args[0], cmd)
		},
	}

	return cmd
}

func runRecord(opts *RecordOptions, sentence string, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

	rec, ok := parser.Extract(sentence)
	if !ok {
		slog.Debug("no transaction command recognized", "input", sentence)
		if err := out.Error("no_match", "input does not contain a transaction command", nil); err != nil {
			return err
		}
		return NewExitError(ExitFailure, "no transaction command recognized")
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Insert(cmd.Context(), *rec); err != nil {
		return WrapExitError(ExitCommandError, "failed to insert transaction", err)
	}

	if opts.Format == "json" {
		return out.Success(recordPayload(*rec))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", describeRecord(*rec))
	return nil
}
