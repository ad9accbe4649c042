package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/almanac"
	"daybook/internal/record"
	"daybook/internal/store"
)

// DayStatus summarizes curation readiness for one target date.
type DayStatus struct {
	Role         string `json:"role"` // "publish" or "backfill"
	Address      string `json:"address"`
	Display      string `json:"display"`
	RecordExists bool   `json:"record_exists"`
	PrimaryCount int    `json:"primary_count"`
	Ready        bool   `json:"ready"` // primary category non-empty
	IntakeExists bool   `json:"intake_exists"`
	Candidates   int    `json:"candidates"` // total across categories
	Problem      string `json:"problem,omitempty"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report publish and backfill readiness",
		Long: `Report, read-only, whether the publish date (today's corpus date) and
the backfill date (publish plus the configured lead) are ready: record
present, primary category filled, intake pool available.

Advisory only; always exits 0.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd)
		},
	}
	return cmd
}

func runStatus(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(cmd, opts)

	cfg, err := loadConfig(opts)
	if err != nil {
		// Advisory command: report the problem, exit 0 regardless.
		fmt.Fprintf(cmd.OutOrStdout(), "status unavailable: %v\n", err)
		return nil
	}

	days, closeDays, err := cfg.OpenDays()
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "status unavailable: %v\n", err)
		return nil
	}
	defer closeDays()

	intake, closeIntake, err := cfg.OpenIntake()
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "status unavailable: %v\n", err)
		return nil
	}
	defer closeIntake()

	publish := publishAddress()
	statuses := []DayStatus{gatherStatus(days, intake, "publish", publish)}
	if backfill, err := backfillAddress(cfg.PublishLeadDays); err == nil {
		statuses = append(statuses, gatherStatus(days, intake, "backfill", backfill))
	}

	var b strings.Builder
	for _, s := range statuses {
		fmt.Fprintf(&b, "%s %s (%s)\n", s.Role, s.Address, s.Display)
		if s.Problem != "" {
			fmt.Fprintf(&b, "  problem: %s\n", s.Problem)
			continue
		}
		if !s.RecordExists {
			b.WriteString("  record: missing (run scaffold)\n")
		} else if s.Ready {
			fmt.Fprintf(&b, "  record: ready (%d primary entries)\n", s.PrimaryCount)
		} else {
			b.WriteString("  record: primary category still empty\n")
		}
		if s.IntakeExists {
			fmt.Fprintf(&b, "  intake: %d candidates\n", s.Candidates)
		} else {
			b.WriteString("  intake: no pool seeded\n")
		}
	}
	return f.SuccessText(b.String(), statuses)
}

func gatherStatus(days, intake store.Interface, role, addr string) DayStatus {
	s := DayStatus{Role: role, Address: addr}
	s.Display, _ = almanac.DisplayForm(addr)

	body, err := days.Load(addr)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// record missing; scaffold owes us one
	case err != nil:
		s.Problem = err.Error()
		return s
	default:
		s.RecordExists = true
		d, err := record.DecodeDay(body)
		if err != nil {
			s.Problem = fmt.Sprintf("record unreadable: %v", err)
			return s
		}
		s.PrimaryCount = len(d.Soldiers)
		s.Ready = s.PrimaryCount > 0
	}

	poolBody, err := intake.Load(addr)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		s.Problem = err.Error()
	default:
		s.IntakeExists = true
		if pool, err := record.DecodeIntake(poolBody); err == nil {
			for _, cat := range record.Order {
				s.Candidates += len(pool.Category(cat))
			}
		}
	}
	return s
}
