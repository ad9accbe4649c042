package curate

import (
	"errors"

	"daybook/internal/record"
	"daybook/internal/store"
)

// Mode selects how picked candidates combine with a record's current
// category content.
type Mode string

const (
	// ModeAppend keeps the record's current entries ahead of the picks.
	ModeAppend Mode = "append"

	// ModeOverwrite discards the current entries and starts from the picks.
	ModeOverwrite Mode = "overwrite"
)

// Selection maps a category to 1-based positions into that category's
// candidate list. Order is the order the curator supplied; it becomes
// editorial priority among the picks.
type Selection map[record.Category][]int

// Empty reports whether no positions were supplied in any category.
func (s Selection) Empty() bool {
	for _, positions := range s {
		if len(positions) > 0 {
			return false
		}
	}
	return true
}

// CategoryResult reports what promotion did to one category.
type CategoryResult struct {
	Category record.Category `json:"category"`
	Picked   int             `json:"picked"`
	Kept     int             `json:"kept"`
	Skipped  []int           `json:"skipped,omitempty"` // out-of-range positions dropped
}

// Result reports a promotion for one address.
type Result struct {
	Address    string           `json:"address"`
	Mode       Mode             `json:"mode"`
	Categories []CategoryResult `json:"categories"`
}

// Promoter merges intake candidates into curated records.
type Promoter struct {
	Days   store.Interface
	Intake store.Interface
}

// Plan computes the record a promotion would write, without writing it.
// The invariant gate applies here too: a plan that would leave the
// primary category empty fails, so a dry run reports exactly what a real
// run would.
func (p *Promoter) Plan(addr string, sel Selection, mode Mode) (*Result, *record.Day, error) {
	if sel.Empty() {
		return nil, nil, NewEmptySelectionError(addr)
	}

	poolBytes, err := p.Intake.Load(addr)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, NewNoIntakeError(addr)
	}
	if err != nil {
		return nil, nil, err
	}
	pool, err := record.DecodeIntake(poolBytes)
	if err != nil {
		return nil, nil, NewParseError(addr, err)
	}

	dayBytes, err := p.Days.Load(addr)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, NewNoRecordError(addr)
	}
	if err != nil {
		return nil, nil, err
	}
	day, err := record.DecodeDay(dayBytes)
	if err != nil {
		return nil, nil, NewParseError(addr, err)
	}

	result := &Result{Address: addr, Mode: mode}
	for _, cat := range record.Order {
		positions := sel[cat]
		if len(positions) == 0 {
			continue
		}

		candidates := pool.Category(cat)
		var picked []record.Entry
		var skipped []int
		for _, pos := range positions {
			// Out-of-range positions are dropped, not errors: the
			// candidate was already consumed or the index mistyped.
			if pos < 1 || pos > len(candidates) {
				skipped = append(skipped, pos)
				continue
			}
			picked = append(picked, candidates[pos-1].Entry)
		}

		target := day.Category(cat)
		var base []record.Entry
		if mode == ModeAppend {
			base = *target
		}

		merged := make([]record.Entry, 0, len(base)+len(picked))
		merged = append(merged, base...)
		merged = append(merged, picked...)
		if cap := record.Cap(cat); len(merged) > cap {
			merged = merged[:cap]
		}
		*target = merged

		result.Categories = append(result.Categories, CategoryResult{
			Category: cat,
			Picked:   len(picked),
			Kept:     len(merged),
			Skipped:  skipped,
		})
	}

	// The core rule: never persist a record lacking a primary entry, and
	// never fabricate one to satisfy it.
	if len(day.Soldiers) == 0 {
		return nil, nil, NewPrimaryEmptyError(addr)
	}

	day.Date = addr
	return result, day, nil
}

// Promote merges the selected candidates into the record and writes it
// back in one whole-record save. On any error the stored record is
// untouched.
func (p *Promoter) Promote(addr string, sel Selection, mode Mode) (*Result, error) {
	result, day, err := p.Plan(addr, sel, mode)
	if err != nil {
		return nil, err
	}

	body, err := record.EncodeDay(day)
	if err != nil {
		return nil, err
	}
	if err := p.Days.Save(addr, body); err != nil {
		return nil, err
	}
	return result, nil
}
