package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"daybook/internal/almanac"
	"daybook/internal/curate"
)

// NewScaffoldCommand creates the scaffold command.
func NewScaffoldCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create an empty record for every corpus date",
		Long: `Materialize one empty record per date across the whole corpus range,
` + almanac.Start + ` through ` + almanac.End + ` inclusive.

Existing records are skipped untouched; re-running is always safe.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(rootOpts, cmd)
		},
	}
	return cmd
}

func runScaffold(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	days, closeDays, err := cfg.OpenDays()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open record store", err)
	}
	defer closeDays()

	report, err := curate.Scaffold(days)
	if err != nil {
		return WrapExitError(ExitCommandError, "scaffold failed", err)
	}

	slog.Info("scaffold complete", "created", report.Created, "skipped", report.Skipped)
	f := newFormatter(cmd, opts)
	return f.SuccessText(
		fmt.Sprintf("Scaffolded %d records (%d already present)\n", report.Created, report.Skipped),
		report,
	)
}
