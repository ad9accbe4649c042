package cli

import (
	"errors"
	"fmt"
	"time"

	"daybook/internal/almanac"
	"daybook/internal/curate"
	"daybook/internal/record"
	"daybook/internal/store"
)

// nowFunc resolves the wall clock; a package var so tests can pin it.
var nowFunc = time.Now

// publishAddress maps today's wall-clock date onto its corpus address.
func publishAddress() string {
	now := nowFunc()
	return almanac.MapWallClock(now.Month(), now.Day())
}

// backfillAddress is the curation target: the publish address pushed
// ahead by the configured lead, clamped to the corpus range.
func backfillAddress(leadDays int) (string, error) {
	addr, err := almanac.Offset(publishAddress(), leadDays)
	if err != nil {
		return "", err
	}
	return almanac.Clamp(addr), nil
}

// resolveAddress picks the target date from a positional argument or the
// --publish/--backfill flags. Exactly one source must be used. Explicit
// dates are validated and clamped to the corpus range.
func resolveAddress(args []string, publish, backfill bool, leadDays int) (string, error) {
	sources := 0
	if len(args) == 1 {
		sources++
	}
	if publish {
		sources++
	}
	if backfill {
		sources++
	}
	if sources != 1 {
		return "", NewExitError(ExitCommandError,
			"specify exactly one of: a YYYY-MM-DD date, --publish, or --backfill")
	}

	switch {
	case publish:
		return publishAddress(), nil
	case backfill:
		addr, err := backfillAddress(leadDays)
		if err != nil {
			return "", WrapExitError(ExitCommandError, "failed to compute backfill date", err)
		}
		return addr, nil
	default:
		if _, err := almanac.ParseAddress(args[0]); err != nil {
			return "", WrapExitError(ExitCommandError, "invalid date", err)
		}
		return almanac.Clamp(args[0]), nil
	}
}

// nextMissingAddress finds the first corpus address still owing a
// primary entry: no record, or a record whose primary category is empty.
// Undecodable records are skipped; audit owns reporting those.
func nextMissingAddress(days store.Interface) (string, error) {
	for _, addr := range almanac.Addresses() {
		body, err := days.Load(addr)
		if errors.Is(err, store.ErrNotFound) {
			return addr, nil
		}
		if err != nil {
			return "", err
		}
		d, err := record.DecodeDay(body)
		if err != nil {
			continue
		}
		if len(d.Soldiers) == 0 {
			return addr, nil
		}
	}
	return "", fmt.Errorf("no date is missing a primary entry; the corpus is fully promoted")
}

// exitCodeFor maps pipeline errors onto the CLI exit-code contract: the
// invariant gate is a failure (1), everything else a command error (2).
func exitCodeFor(err error) int {
	if curate.IsPrimaryEmpty(err) {
		return ExitFailure
	}
	return ExitCommandError
}
