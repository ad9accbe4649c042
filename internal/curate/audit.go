package curate

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"daybook/internal/record"
	"daybook/internal/store"
)

// maxListedAddresses caps how many offending addresses each report
// section prints; full counts are always reported.
const maxListedAddresses = 10

// Report is the result of one audit pass over the record store.
type Report struct {
	RunID   string `json:"run_id"`
	Scanned int    `json:"scanned"`

	// Offending addresses per violation class, ascending.
	ParseFailures []string `json:"parse_failures,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
	EmptyPrimary  []string `json:"empty_primary,omitempty"`
	OverCap       []string `json:"over_cap,omitempty"`
}

// Violations returns the total violation count across all classes.
func (r *Report) Violations() int {
	return len(r.ParseFailures) + len(r.MissingFields) + len(r.EmptyPrimary) + len(r.OverCap)
}

// Auditor scans the record store for invariant violations. It never
// mutates the store.
type Auditor struct {
	Days store.Interface
}

// Audit checks every stored record: parseable, all four category fields
// present as sequences, primary category non-empty, every category
// within its cap. Parse failures are recorded and the scan continues.
func (a *Auditor) Audit() (*Report, error) {
	addrs, err := a.Days.List()
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString()}
	for _, addr := range addrs {
		body, err := a.Days.Load(addr)
		if err != nil {
			return nil, err
		}
		report.Scanned++
		a.check(report, addr, body)
	}
	return report, nil
}

func (a *Auditor) check(report *Report, addr string, body []byte) {
	raw, err := record.DecodeRaw(body)
	if err != nil {
		report.ParseFailures = append(report.ParseFailures, addr)
		return
	}

	allPresent := true
	for _, cat := range record.Order {
		if !raw.IsArray(string(cat)) {
			allPresent = false
		}
	}
	if !allPresent {
		report.MissingFields = append(report.MissingFields, addr)
	}

	emptyPrimary := false
	overCap := false
	for _, cat := range record.Order {
		if !raw.IsArray(string(cat)) {
			continue
		}
		entries, _, err := raw.Entries(string(cat))
		if err != nil {
			report.ParseFailures = append(report.ParseFailures, addr)
			return
		}
		if cat == record.Primary && len(entries) == 0 {
			emptyPrimary = true
		}
		if len(entries) > record.Cap(cat) {
			overCap = true
		}
	}
	if emptyPrimary {
		report.EmptyPrimary = append(report.EmptyPrimary, addr)
	}
	if overCap {
		report.OverCap = append(report.OverCap, addr)
	}
}

// Render writes the human-readable report. Address lists are truncated
// for display; counts are always exact.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Audited %d records, %d violations\n", r.Scanned, r.Violations())
	renderSection(w, "parse failures", r.ParseFailures)
	renderSection(w, "missing or malformed category fields", r.MissingFields)
	renderSection(w, "empty primary category", r.EmptyPrimary)
	renderSection(w, "over-cap categories", r.OverCap)
}

func renderSection(w io.Writer, label string, addrs []string) {
	fmt.Fprintf(w, "  %s: %d\n", label, len(addrs))
	for i, addr := range addrs {
		if i == maxListedAddresses {
			fmt.Fprintf(w, "    ... and %d more\n", len(addrs)-maxListedAddresses)
			return
		}
		fmt.Fprintf(w, "    %s\n", addr)
	}
}
