package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapWallClock(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
		want  string
	}{
		{"day before cutover", time.July, 3, "1776-07-03"},
		{"cutover day", time.July, 4, "1775-07-04"},
		{"after cutover", time.December, 25, "1775-12-25"},
		{"new year", time.January, 1, "1776-01-01"},
		{"leap day", time.February, 29, "1776-02-29"},
		{"late june", time.June, 30, "1776-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapWallClock(tt.month, tt.day))
		})
	}
}

func TestClamp(t *testing.T) {
	// In-range addresses are untouched.
	for _, addr := range []string{Start, End, "1775-12-25", "1776-02-29"} {
		assert.Equal(t, addr, Clamp(addr))
	}

	assert.Equal(t, Start, Clamp("1775-07-03"))
	assert.Equal(t, Start, Clamp("1774-01-01"))
	assert.Equal(t, End, Clamp("1776-07-04"))
	assert.Equal(t, End, Clamp("1799-12-31"))
}

func TestOffset(t *testing.T) {
	got, err := Offset("1775-07-04", 1)
	require.NoError(t, err)
	assert.Equal(t, "1775-07-05", got)

	// Month rollover.
	got, err = Offset("1775-07-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "1775-08-01", got)

	// Year rollover.
	got, err = Offset("1775-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "1776-01-01", got)

	// 1776 is a leap year.
	got, err = Offset("1776-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "1776-02-29", got)

	got, err = Offset("1776-02-29", 1)
	require.NoError(t, err)
	assert.Equal(t, "1776-03-01", got)

	// No clamping: Offset may leave the corpus range.
	got, err = Offset(End, 1)
	require.NoError(t, err)
	assert.Equal(t, "1776-07-04", got)

	_, err = Offset("not-a-date", 1)
	assert.Error(t, err)
}

func TestOffsetRoundTrip(t *testing.T) {
	for _, addr := range []string{Start, "1775-12-25", "1776-02-29", End} {
		for _, n := range []int{1, 7, 30, 100, 366} {
			shifted, err := Offset(addr, n)
			require.NoError(t, err)
			back, err := Offset(shifted, -n)
			require.NoError(t, err)
			assert.Equal(t, addr, back, "round trip %s by %d", addr, n)
		}
	}
}

func TestParseAddress(t *testing.T) {
	_, err := ParseAddress("1775-07-04")
	assert.NoError(t, err)

	for _, bad := range []string{
		"",
		"1775-7-4",     // not zero-padded
		"1775/07/04",   // wrong separators
		"1775-02-30",   // impossible date
		"1775-13-01",   // impossible month
		"july 4, 1775", // prose
	} {
		_, err := ParseAddress(bad)
		assert.Error(t, err, "ParseAddress(%q) should fail", bad)
	}
}

func TestAddresses(t *testing.T) {
	addrs := Addresses()

	// Jul 4 1775 through Jul 3 1776, leap day included.
	require.Len(t, addrs, 366)
	assert.Equal(t, Start, addrs[0])
	assert.Equal(t, End, addrs[len(addrs)-1])

	// Ascending, no duplicates, all in range.
	for i := 1; i < len(addrs); i++ {
		assert.Less(t, addrs[i-1], addrs[i])
	}
	assert.Contains(t, addrs, "1776-02-29")
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(Start))
	assert.True(t, InRange(End))
	assert.True(t, InRange("1776-01-01"))
	assert.False(t, InRange("1775-07-03"))
	assert.False(t, InRange("1776-07-04"))
}
