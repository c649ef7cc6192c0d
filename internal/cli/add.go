package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack/fintrack/internal/ledger"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Date        string
	Kind        string
	Amount      string
	Description string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction from flags",
		Long: `Record a transaction directly, bypassing the natural-language parser.

The date is an ISO 8601 calendar date and the amount a plain decimal
number with "." as the decimal separator.

Examples:
  fintrack add --date 2024-05-12 --kind revenue --amount 150.00 --description rent
  fintrack add --date 2024-05-12 --kind expense --amount 30`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "transaction date, ISO 8601 (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "transaction kind: revenue or expense (required)")
	_ = cmd.MarkFlagRequired("kind")
	cmd.Flags().StringVar(&opts.Amount, "amount", "", "transaction amount, non-negative decimal (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&opts.Description, "description", "", "optional description")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

	date, err := ledger.ParseISODate(opts.Date)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --date", err)
	}

	kind, err := ledger.ParseKind(opts.Kind)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --kind", err)
	}

	amount, err := decimal.NewFromString(opts.Amount)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --amount", err)
	}
	if amount.IsNegative() {
		return NewExitError(ExitCommandError, "invalid --amount: must be non-negative")
	}

	rec := ledger.Record{Date: date, Kind: kind, Amount: amount}
	if cmd.Flags().Changed("description") {
		rec.Description = &opts.Description
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Insert(cmd.Context(), rec); err != nil {
		return WrapExitError(ExitCommandError, "failed to insert transaction", err)
	}

	if opts.Format == "json" {
		return out.Success(recordPayload(rec))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", describeRecord(rec))
	return nil
}
