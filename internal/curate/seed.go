package curate

import (
	"errors"

	"daybook/internal/record"
	"daybook/internal/store"
)

// SeedOptions controls intake pool creation.
type SeedOptions struct {
	// Overwrite replaces an existing pool instead of refusing.
	Overwrite bool

	// FromData pre-seeds the pool with the day record's current entries,
	// so a curator can re-select from what is already published.
	FromData bool
}

// SeedIntake creates a candidate pool for an address: empty by default,
// or copied from the curated record with FromData. The sourcing pipeline
// appends its own candidates afterwards.
func SeedIntake(intake, days store.Interface, addr string, opts SeedOptions) (*record.Intake, error) {
	exists, err := intake.Exists(addr)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Overwrite {
		return nil, NewIntakeExistsError(addr)
	}

	pool := record.NewIntake(addr)
	if opts.FromData {
		body, err := days.Load(addr)
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewNoRecordError(addr)
		}
		if err != nil {
			return nil, err
		}
		day, err := record.DecodeDay(body)
		if err != nil {
			return nil, NewParseError(addr, err)
		}

		for _, cat := range record.Order {
			entries := *day.Category(cat)
			candidates := make([]record.Candidate, 0, len(entries))
			for _, e := range entries {
				candidates = append(candidates, record.Candidate{Entry: e})
			}
			switch cat {
			case record.CatSoldiers:
				pool.Soldiers = candidates
			case record.CatCommand:
				pool.Command = candidates
			case record.CatCongress:
				pool.Congress = candidates
			case record.CatVoices:
				pool.Voices = candidates
			}
		}
	}

	body, err := record.EncodeIntake(pool)
	if err != nil {
		return nil, err
	}
	if err := intake.Save(addr, body); err != nil {
		return nil, err
	}
	return pool, nil
}
