package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by id",
		Long: `Delete the transaction with the given identifier.

Deleting an id that does not exist is not an error: the command reports
that nothing was removed and exits successfully.

Example:
  fintrack delete 42`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	return cmd
}

// deleteResult is the JSON wire shape for a delete outcome.
type deleteResult struct {
	ID      int64 `json:"id"`
	Removed bool  `json:"removed"`
}

func runDelete(opts *DeleteOptions, rawID string, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid id %q", rawID), err)
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	removed, err := st.Delete(cmd.Context(), id)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to delete transaction", err)
	}

	if opts.Format == "json" {
		return out.Success(deleteResult{ID: id, Removed: removed})
	}

	if removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %d\n", id)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "No transaction with id %d\n", id)
	}
	return nil
}
