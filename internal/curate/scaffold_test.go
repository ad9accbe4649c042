package curate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/internal/almanac"
	"daybook/internal/record"
)

func TestScaffoldCreatesFullRange(t *testing.T) {
	days, _ := newTestStores(t)

	report, err := Scaffold(days)
	require.NoError(t, err)
	assert.Equal(t, 366, report.Created)
	assert.Zero(t, report.Skipped)

	addrs, err := days.List()
	require.NoError(t, err)
	assert.Equal(t, almanac.Addresses(), addrs)

	// Scaffolded records are empty and well shaped.
	d := loadDay(t, days, almanac.Start)
	assert.Equal(t, almanac.Start, d.Date)
	assert.Empty(t, d.Soldiers)
	assert.Empty(t, d.Voices)
}

func TestScaffoldIdempotentAndAdditive(t *testing.T) {
	days, _ := newTestStores(t)

	// Pre-existing curated content must survive a scaffold run.
	curated := record.NewDay("1775-12-25")
	curated.Soldiers = append(curated.Soldiers, record.Entry{Quote: "Christmas in camp."})
	saveDay(t, days, curated)

	report, err := Scaffold(days)
	require.NoError(t, err)
	assert.Equal(t, 365, report.Created)
	assert.Equal(t, 1, report.Skipped)

	d := loadDay(t, days, "1775-12-25")
	assert.Equal(t, []string{"Christmas in camp."}, quotes(d.Soldiers))

	// Second run touches nothing.
	report, err = Scaffold(days)
	require.NoError(t, err)
	assert.Zero(t, report.Created)
	assert.Equal(t, 366, report.Skipped)
}
