package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrack/fintrack/internal/config"
	"github.com/fintrack/fintrack/internal/ledger"
	"github.com/fintrack/fintrack/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // SQLite database path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fintrack CLI.
// cfg supplies environment-derived defaults; flags override them.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fintrack",
		Short: "fintrack - transaction ledger",
		Long: `A small ledger of revenue and expense transactions backed by a local
SQLite database. Entries are recorded either from natural-language commands
("register 150,00 of revenue on 12/05/2024 with description rent") or
directly via flags, and queried with date-range filters.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(opts, cfg.LogLevel)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", cfg.DatabasePath, "path to SQLite database")

	// Add subcommands
	cmd.AddCommand(NewRecordCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTotalsCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// setupLogging configures the process-wide slog default. --verbose wins
// over the configured level.
func setupLogging(opts *RootOptions, level string) {
	logLevel := parseLogLevel(level)
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openStore opens the database configured on the root options.
// The caller must Close the returned store.
func openStore(opts *RootOptions) (*store.Store, error) {
	slog.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	f := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
	if f.Format == "json" {
		f.TraceID = NewTraceID()
	}
	return f
}

// parseRange converts the --from/--to flag values (ISO 8601 calendar
// dates, empty = open bound) into an inclusive date range.
func parseRange(from, to string) (ledger.DateRange, error) {
	var r ledger.DateRange
	if from != "" {
		d, err := ledger.ParseISODate(from)
		if err != nil {
			return ledger.DateRange{}, WrapExitError(ExitCommandError, "invalid --from date", err)
		}
		r.From = &d
	}
	if to != "" {
		d, err := ledger.ParseISODate(to)
		if err != nil {
			return ledger.DateRange{}, WrapExitError(ExitCommandError, "invalid --to date", err)
		}
		r.To = &d
	}
	return r, nil
}
