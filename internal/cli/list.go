package cli

import (
	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	From string
	To   string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Long: `List ledger transactions ordered by date descending, ties broken by
larger id first. Both range bounds are inclusive and independently optional.

Examples:
  fintrack list
  fintrack list --from 2024-01-01 --to 2024-01-31
  fintrack list --from 2024-01-01 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "inclusive lower date bound (ISO 8601)")
	cmd.Flags().StringVar(&opts.To, "to", "", "inclusive upper date bound (ISO 8601)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

	r, err := parseRange(opts.From, opts.To)
	if err != nil {
		return err
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	txs, err := st.ListTransactions(cmd.Context(), r)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list transactions", err)
	}

	if opts.Format == "json" {
		return out.Success(transactionRows(txs))
	}

	renderTransactions(cmd.OutOrStdout(), txs)
	return nil
}
