package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/internal/record"
	"daybook/internal/store"
)

func pinClock(t *testing.T, year int, month time.Month, day int) {
	t.Helper()
	restore := nowFunc
	nowFunc = func() time.Time {
		return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { nowFunc = restore })
}

func TestPublishAddress(t *testing.T) {
	pinClock(t, 2025, time.July, 4)
	assert.Equal(t, "1775-07-04", publishAddress())

	pinClock(t, 2026, time.July, 3)
	assert.Equal(t, "1776-07-03", publishAddress())

	pinClock(t, 2025, time.December, 25)
	assert.Equal(t, "1775-12-25", publishAddress())
}

func TestBackfillAddressClampsAtRangeEnd(t *testing.T) {
	pinClock(t, 2026, time.June, 30)
	addr, err := backfillAddress(14)
	require.NoError(t, err)
	assert.Equal(t, "1776-07-03", addr)

	pinClock(t, 2025, time.September, 1)
	addr, err = backfillAddress(14)
	require.NoError(t, err)
	assert.Equal(t, "1775-09-15", addr)
}

func TestResolveAddress(t *testing.T) {
	pinClock(t, 2025, time.August, 1)

	addr, err := resolveAddress([]string{"1775-09-10"}, false, false, 14)
	require.NoError(t, err)
	assert.Equal(t, "1775-09-10", addr)

	addr, err = resolveAddress(nil, true, false, 14)
	require.NoError(t, err)
	assert.Equal(t, "1775-08-01", addr)

	addr, err = resolveAddress(nil, false, true, 14)
	require.NoError(t, err)
	assert.Equal(t, "1775-08-15", addr)

	// Out-of-range explicit dates clamp to the corpus bounds.
	addr, err = resolveAddress([]string{"1774-01-01"}, false, false, 14)
	require.NoError(t, err)
	assert.Equal(t, "1775-07-04", addr)

	// Exactly one date source.
	_, err = resolveAddress(nil, false, false, 14)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	_, err = resolveAddress([]string{"1775-09-10"}, true, false, 14)
	require.Error(t, err)
	_, err = resolveAddress(nil, true, true, 14)
	require.Error(t, err)

	// Bad format.
	_, err = resolveAddress([]string{"09/10/1775"}, false, false, 14)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestNextMissingAddress(t *testing.T) {
	days, err := store.OpenFS(t.TempDir())
	require.NoError(t, err)

	// Empty store: the very first corpus date is missing.
	addr, err := nextMissingAddress(days)
	require.NoError(t, err)
	assert.Equal(t, "1775-07-04", addr)

	// Fill the first two days; an undecodable third is skipped.
	for _, a := range []string{"1775-07-04", "1775-07-05"} {
		d := record.NewDay(a)
		d.Soldiers = append(d.Soldiers, record.Entry{Quote: "q"})
		body, err := record.EncodeDay(d)
		require.NoError(t, err)
		require.NoError(t, days.Save(a, body))
	}
	require.NoError(t, days.Save("1775-07-06", []byte("{corrupt")))

	d := record.NewDay("1775-07-07")
	body, err := record.EncodeDay(d)
	require.NoError(t, err)
	require.NoError(t, days.Save("1775-07-07", body))

	addr, err = nextMissingAddress(days)
	require.NoError(t, err)
	assert.Equal(t, "1775-07-07", addr)
}
