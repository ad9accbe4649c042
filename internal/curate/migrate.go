package curate

import (
	"bytes"

	"daybook/internal/record"
	"daybook/internal/store"
)

// MigrateReport is the result of one schema migration pass.
type MigrateReport struct {
	Scanned    int      `json:"scanned"`
	Reshaped   int      `json:"reshaped"`   // legacy records converted to the current shape
	Normalized int      `json:"normalized"` // current records whose stored form was completed
	Unchanged  int      `json:"unchanged"`
	Failed     []string `json:"failed,omitempty"` // parse failures, skipped
}

// Migrator evolves legacy-shape records into the current shape.
//
// Legacy mapping: deeds then battles concatenate into soldiers_day;
// congress becomes continental_congress_committees; the other two
// secondary categories start empty. A category that already holds a
// valid sequence is never overwritten, even on a partially migrated
// record, so repeated runs cannot duplicate content. Migration only
// reshapes existing content; an empty primary category is left for the
// audit to flag.
type Migrator struct {
	Days store.Interface
}

// Run migrates every record in the store. Records that cannot be parsed
// are reported and skipped; the pass continues over the rest.
func (m *Migrator) Run() (*MigrateReport, error) {
	addrs, err := m.Days.List()
	if err != nil {
		return nil, err
	}

	report := &MigrateReport{}
	for _, addr := range addrs {
		body, err := m.Days.Load(addr)
		if err != nil {
			return nil, err
		}
		report.Scanned++

		day, legacy, ok := migrateOne(addr, body)
		if !ok {
			report.Failed = append(report.Failed, addr)
			continue
		}

		out, err := record.EncodeDay(day)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(out, body) {
			report.Unchanged++
			continue
		}
		if err := m.Days.Save(addr, out); err != nil {
			return nil, err
		}
		if legacy {
			report.Reshaped++
		} else {
			report.Normalized++
		}
	}
	return report, nil
}

// migrateOne builds the current-shape record for one stored document.
// Returns ok=false when the document cannot be parsed.
func migrateOne(addr string, body []byte) (day *record.Day, legacy bool, ok bool) {
	raw, err := record.DecodeRaw(body)
	if err != nil {
		return nil, false, false
	}

	day = record.NewDay(addr)
	if d := raw.Date(); d != "" {
		day.Date = d
	}

	// Decode the legacy buckets up front; a malformed legacy field is a
	// parse failure for the whole record.
	legacyFields := map[string][]record.Entry{}
	for _, key := range []string{record.LegacyDeeds, record.LegacyBattles, record.LegacyCongress} {
		entries, present, err := raw.Entries(key)
		if err != nil {
			return nil, false, false
		}
		if present {
			legacyFields[key] = entries
		}
	}

	for _, cat := range record.Order {
		entries, present, err := raw.Entries(string(cat))
		if err != nil {
			return nil, false, false
		}
		if present {
			// Already a valid sequence: keep as is, never re-derive.
			if entries == nil {
				entries = []record.Entry{}
			}
			*day.Category(cat) = entries
			continue
		}

		switch cat {
		case record.Primary:
			merged := append([]record.Entry{}, legacyFields[record.LegacyDeeds]...)
			merged = append(merged, legacyFields[record.LegacyBattles]...)
			*day.Category(cat) = merged
		case record.CatCongress:
			*day.Category(cat) = append([]record.Entry{}, legacyFields[record.LegacyCongress]...)
		}
	}

	return day, raw.HasLegacyShape(), true
}
