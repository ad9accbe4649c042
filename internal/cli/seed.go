package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"daybook/internal/curate"
	"daybook/internal/record"
)

// SeedIntakeOptions holds flags for the seed-intake command.
type SeedIntakeOptions struct {
	*RootOptions
	Publish   bool
	Backfill  bool
	Overwrite bool
	FromData  bool
	Print     bool
}

// NewSeedIntakeCommand creates the seed-intake command.
func NewSeedIntakeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedIntakeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed-intake [date]",
		Short: "Create a candidate pool for a date",
		Long: `Create the intake candidate pool for a date: empty by default, or
pre-seeded from the curated record with --from-data. The sourcing
pipeline appends its own candidates to the pool afterwards.

The date is positional YYYY-MM-DD, or computed with --publish (today's
corpus date) or --backfill (publish date plus the configured lead).

Example:
  daybook seed-intake 1775-09-10
  daybook seed-intake --backfill --from-data --print`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeedIntake(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Publish, "publish", false, "target today's publish date")
	cmd.Flags().BoolVar(&opts.Backfill, "backfill", false, "target the backfill date")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "replace an existing pool")
	cmd.Flags().BoolVar(&opts.FromData, "from-data", false, "pre-seed from the curated record")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "print the created pool")

	return cmd
}

func runSeedIntake(opts *SeedIntakeOptions, args []string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	addr, err := resolveAddress(args, opts.Publish, opts.Backfill, cfg.PublishLeadDays)
	if err != nil {
		return err
	}

	days, closeDays, err := cfg.OpenDays()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open record store", err)
	}
	defer closeDays()

	intake, closeIntake, err := cfg.OpenIntake()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open intake store", err)
	}
	defer closeIntake()

	pool, err := curate.SeedIntake(intake, days, addr, curate.SeedOptions{
		Overwrite: opts.Overwrite,
		FromData:  opts.FromData,
	})
	if err != nil {
		return WrapExitError(exitCodeFor(err), "seed-intake failed", err)
	}
	slog.Info("intake pool seeded", "address", addr, "from_data", opts.FromData)

	f := newFormatter(cmd, opts.RootOptions)
	if opts.Print {
		body, err := record.EncodeIntake(pool)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to encode pool", err)
		}
		return f.SuccessText(string(body), pool)
	}
	return f.SuccessText(fmt.Sprintf("Seeded intake pool for %s\n", addr), pool)
}
