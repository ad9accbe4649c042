package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/curate"
)

// NewMigrateSchemaCommand creates the migrate-schema command.
func NewMigrateSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate-schema",
		Short: "Convert legacy-shape records to the current shape",
		Long: `Migrate every record from the legacy shape (congress, battles, deeds)
to the current four-category shape: deeds then battles concatenate into
soldiers_day, congress becomes continental_congress_committees.

Idempotent; records already in the current shape are left alone.
Records that cannot be parsed are reported and skipped. Exits 0 when
every record migrates cleanly, 2 if any parse failure occurred.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateSchema(rootOpts, cmd)
		},
	}
	return cmd
}

func runMigrateSchema(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	days, closeDays, err := cfg.OpenDays()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open record store", err)
	}
	defer closeDays()

	report, err := (&curate.Migrator{Days: days}).Run()
	if err != nil {
		return WrapExitError(ExitCommandError, "migration failed", err)
	}
	slog.Info("migration complete",
		"scanned", report.Scanned,
		"reshaped", report.Reshaped,
		"normalized", report.Normalized,
		"failed", len(report.Failed))

	var b strings.Builder
	fmt.Fprintf(&b, "Migrated %d records: %d reshaped, %d normalized, %d unchanged\n",
		report.Scanned, report.Reshaped, report.Normalized, report.Unchanged)
	for _, addr := range report.Failed {
		fmt.Fprintf(&b, "  failed to parse: %s\n", addr)
	}

	f := newFormatter(cmd, opts)
	if err := f.SuccessText(b.String(), report); err != nil {
		return err
	}

	if len(report.Failed) > 0 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("%d record(s) could not be parsed", len(report.Failed)))
	}
	return nil
}
