package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/curate"
)

// NewAuditCommand creates the audit command.
func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Scan the whole corpus for invariant violations",
		Long: `Scan every stored record and report invariant violations: unparseable
content, missing or malformed category fields, empty primary categories,
and categories over their cap.

Read-only. Exits 0 when the corpus is clean, 1 otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(rootOpts, cmd)
		},
	}
	return cmd
}

func runAudit(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	days, closeDays, err := cfg.OpenDays()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open record store", err)
	}
	defer closeDays()

	report, err := (&curate.Auditor{Days: days}).Audit()
	if err != nil {
		return WrapExitError(ExitCommandError, "audit failed", err)
	}
	slog.Info("audit complete",
		"run_id", report.RunID,
		"scanned", report.Scanned,
		"violations", report.Violations())

	var b strings.Builder
	report.Render(&b)
	f := newFormatter(cmd, opts)
	if err := f.SuccessText(b.String(), report); err != nil {
		return err
	}

	if report.Violations() > 0 {
		return NewExitError(ExitFailure, "corpus has invariant violations")
	}
	return nil
}
