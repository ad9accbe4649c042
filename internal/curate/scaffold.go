package curate

import (
	"daybook/internal/almanac"
	"daybook/internal/record"
	"daybook/internal/store"
)

// ScaffoldReport is the result of one scaffold pass.
type ScaffoldReport struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Scaffold writes an empty record for every corpus address that has
// none, so every date is addressable before curation starts. Existing
// records are never touched; re-running is safe.
func Scaffold(days store.Interface) (*ScaffoldReport, error) {
	report := &ScaffoldReport{}
	for _, addr := range almanac.Addresses() {
		exists, err := days.Exists(addr)
		if err != nil {
			return nil, err
		}
		if exists {
			report.Skipped++
			continue
		}

		body, err := record.EncodeDay(record.NewDay(addr))
		if err != nil {
			return nil, err
		}
		if err := days.Save(addr, body); err != nil {
			return nil, err
		}
		report.Created++
	}
	return report, nil
}
