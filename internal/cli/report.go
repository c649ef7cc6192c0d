package cli

import (
	"github.com/spf13/cobra"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	From string
	To   string
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Total revenue grouped by description",
		Long: `Report total revenue per description within an optional inclusive date
range, largest total first. Expense transactions are excluded.

Examples:
  fintrack report
  fintrack report --from 2024-01-01 --to 2024-03-31 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "inclusive lower date bound (ISO 8601)")
	cmd.Flags().StringVar(&opts.To, "to", "", "inclusive upper date bound (ISO 8601)")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
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

	report, err := st.RevenueByDescription(cmd.Context(), r)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build report", err)
	}

	if opts.Format == "json" {
		return out.Success(reportRows(report))
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}
