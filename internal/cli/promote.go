package cli

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/almanac"
	"daybook/internal/config"
	"daybook/internal/curate"
	"daybook/internal/record"
	"daybook/internal/store"
)

// PromoteOptions holds flags for the promote command.
type PromoteOptions struct {
	*RootOptions
	Soldiers    string
	Command     string
	Congress    string
	Voices      string
	List        bool
	Overwrite   bool
	DryRun      bool
	NextMissing bool
}

// NewPromoteCommand creates the promote command.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PromoteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "promote [date]",
		Short: "Merge selected intake candidates into the curated record",
		Long: `Promote intake candidates into the curated record for a date.

Selections are 1-based positions into each category's candidate list,
in priority order. Out-of-range positions are skipped with a warning.
Category caps apply after the merge, and a promotion that would leave
the soldiers_day category empty is rejected without writing anything.

Example:
  daybook promote 1775-09-10 --list
  daybook promote 1775-09-10 --soldiers 2,1 --congress 3
  daybook promote --next-missing --soldiers 1 --overwrite`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromote(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Soldiers, "soldiers", "", "positions for soldiers_day (csv of 1-based indices)")
	cmd.Flags().StringVar(&opts.Command, "command", "", "positions for men_of_command")
	cmd.Flags().StringVar(&opts.Congress, "congress", "", "positions for continental_congress_committees")
	cmd.Flags().StringVar(&opts.Voices, "voices", "", "positions for voices_beyond_the_line")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list candidates and exit without writing")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "replace category content instead of appending")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "compute the result without writing")
	cmd.Flags().BoolVar(&opts.NextMissing, "next-missing", false, "target the first date missing a primary entry")

	return cmd
}

func runPromote(opts *PromoteOptions, args []string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
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

	var addr string
	switch {
	case opts.NextMissing && len(args) > 0:
		return NewExitError(ExitCommandError, "give either a date or --next-missing, not both")
	case opts.NextMissing:
		addr, err = nextMissingAddress(days)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to find next missing date", err)
		}
		slog.Info("targeting next missing date", "address", addr)
	case len(args) == 1:
		if _, err := almanac.ParseAddress(args[0]); err != nil {
			return WrapExitError(ExitCommandError, "invalid date", err)
		}
		addr = almanac.Clamp(args[0])
	default:
		return NewExitError(ExitCommandError, "a YYYY-MM-DD date or --next-missing is required")
	}

	f := newFormatter(cmd, opts.RootOptions)

	if opts.List {
		return listCandidates(f, intake, addr)
	}

	sel, err := parseSelection(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid selection", err)
	}

	mode := curate.ModeAppend
	if opts.Overwrite {
		mode = curate.ModeOverwrite
	}

	p := &curate.Promoter{Days: days, Intake: intake}

	var result *curate.Result
	if opts.DryRun {
		result, _, err = p.Plan(addr, sel, mode)
	} else {
		result, err = p.Promote(addr, sel, mode)
	}
	if err != nil {
		return WrapExitError(exitCodeFor(err), "promotion failed", err)
	}

	for _, cr := range result.Categories {
		if len(cr.Skipped) > 0 {
			f.VerboseLog("warning: %s: skipped out-of-range positions %v", cr.Category, cr.Skipped)
			slog.Warn("skipped out-of-range positions", "category", cr.Category, "positions", cr.Skipped)
		}
	}

	if !opts.DryRun {
		runEditorHook(cfg, days, addr)
	}

	return f.SuccessText(renderPromoteResult(result, opts.DryRun), result)
}

// parseSelection converts the per-category csv flags into a selection.
func parseSelection(opts *PromoteOptions) (curate.Selection, error) {
	flags := map[record.Category]string{
		record.CatSoldiers: opts.Soldiers,
		record.CatCommand:  opts.Command,
		record.CatCongress: opts.Congress,
		record.CatVoices:   opts.Voices,
	}

	sel := curate.Selection{}
	for cat, raw := range flags {
		if raw == "" {
			continue
		}
		var positions []int
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			pos, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("category %s: %q is not an index", cat, part)
			}
			positions = append(positions, pos)
		}
		if len(positions) > 0 {
			sel[cat] = positions
		}
	}
	return sel, nil
}

func renderPromoteResult(result *curate.Result, dryRun bool) string {
	var b strings.Builder
	if dryRun {
		fmt.Fprintf(&b, "Dry run for %s (%s mode): nothing written\n", result.Address, result.Mode)
	} else {
		fmt.Fprintf(&b, "Promoted %s (%s mode)\n", result.Address, result.Mode)
	}
	for _, cr := range result.Categories {
		fmt.Fprintf(&b, "  %s: picked %d, now %d/%d", cr.Category, cr.Picked, cr.Kept, record.Cap(cr.Category))
		if len(cr.Skipped) > 0 {
			fmt.Fprintf(&b, " (skipped %v)", cr.Skipped)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// listQuoteWidth truncates candidate quotes for terminal listing.
const listQuoteWidth = 80

// listCandidates prints each category's candidates with their 1-based
// positions. Read-only; exits without writing.
func listCandidates(f *OutputFormatter, intake store.Interface, addr string) error {
	body, err := intake.Load(addr)
	if err != nil {
		return WrapExitError(ExitCommandError, "no intake pool to list", err)
	}
	pool, err := record.DecodeIntake(body)
	if err != nil {
		return WrapExitError(ExitCommandError, "intake pool is malformed", err)
	}

	display, err := almanac.DisplayForm(addr)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid address", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Candidates for %s (%s)\n", addr, display)
	for _, cat := range record.Order {
		candidates := pool.Category(cat)
		fmt.Fprintf(&b, "\n%s (%d curated max):\n", cat, record.Cap(cat))
		if len(candidates) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for i, c := range candidates {
			fmt.Fprintf(&b, "  %2d. %s", i+1, truncateQuote(c))
			if c.Citation != "" {
				fmt.Fprintf(&b, " -- %s", c.Citation)
			}
			b.WriteString("\n")
		}
	}
	return f.SuccessText(b.String(), pool)
}

func truncateQuote(c record.Candidate) string {
	text := c.Quote
	if text == "" {
		text = c.Title
	}
	runes := []rune(text)
	if len(runes) > listQuoteWidth {
		return string(runes[:listQuoteWidth-3]) + "..."
	}
	return text
}

// runEditorHook hands the promoted record's file to the configured
// editor command, if any. Best effort; a hook failure never fails the
// promotion that already happened.
func runEditorHook(cfg config.Config, days store.Interface, addr string) {
	if len(cfg.EditorHook) == 0 {
		return
	}
	fsStore, ok := days.(*store.FS)
	if !ok {
		slog.Debug("editor hook skipped: record store is not file-backed")
		return
	}

	argv := append(append([]string{}, cfg.EditorHook...), fsStore.Path(addr))
	if err := exec.Command(argv[0], argv[1:]...).Run(); err != nil {
		slog.Warn("editor hook failed", "command", argv[0], "error", err)
	}
}
