package cli

import (
	"github.com/spf13/cobra"
)

// TotalsOptions holds flags for the totals command.
type TotalsOptions struct {
	*RootOptions
	From string
	To   string
}

// NewTotalsCommand creates the totals command.
func NewTotalsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TotalsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Sum amounts per kind",
		Long: `Sum transaction amounts grouped by kind within an optional inclusive
date range. A kind with no matching rows is omitted from the result
entirely rather than reported as zero.

Examples:
  fintrack totals
  fintrack totals --from 2024-01-01 --to 2024-12-31`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTotals(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "inclusive lower date bound (ISO 8601)")
	cmd.Flags().StringVar(&opts.To, "to", "", "inclusive upper date bound (ISO 8601)")

	return cmd
}

func runTotals(opts *TotalsOptions, cmd *cobra.Command) error {
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

	totals, err := st.Totals(cmd.Context(), r)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to compute totals", err)
	}

	if opts.Format == "json" {
		return out.Success(totalsPayload(totals))
	}

	renderTotals(cmd.OutOrStdout(), totals)
	return nil
}
