package almanac

import (
	"fmt"
	"time"
)

// Start and End bound the corpus, inclusive on both sides.
const (
	Start = "1775-07-04"
	End   = "1776-07-03"
)

// addrLayout is the address wire format ("2006-01-02" reference date).
const addrLayout = "2006-01-02"

// Cutover: wall-clock dates on or after July 4 belong to label-year 1775,
// dates before it to label-year 1776.
const (
	cutoverMonth = time.July
	cutoverDay   = 4
)

// MapWallClock maps a real-calendar month and day onto the corpus address
// for that anniversary. The caller resolves "today" to the intended civil
// timezone before calling; only month and day matter here.
func MapWallClock(month time.Month, day int) string {
	year := 1776
	if month > cutoverMonth || (month == cutoverMonth && day >= cutoverDay) {
		year = 1775
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseAddress validates an address string and returns its calendar date.
// It rejects anything that is not canonical fixed-width YYYY-MM-DD or that
// names an impossible date (e.g. a leap day in a non-leap year).
func ParseAddress(addr string) (time.Time, error) {
	t, err := time.Parse(addrLayout, addr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid address %q: %w", addr, err)
	}
	// time.Parse accepts some non-canonical spellings; round-trip to be strict.
	if t.Format(addrLayout) != addr {
		return time.Time{}, fmt.Errorf("invalid address %q: not canonical YYYY-MM-DD", addr)
	}
	return t, nil
}

// FormatAddress renders a date as a canonical address string.
func FormatAddress(t time.Time) string {
	return t.Format(addrLayout)
}

// InRange reports whether addr falls within [Start, End].
func InRange(addr string) bool {
	return addr >= Start && addr <= End
}

// Clamp returns addr pulled to the nearest corpus boundary. Fixed-width
// zero-padded addresses make the string comparison chronological.
func Clamp(addr string) string {
	if addr < Start {
		return Start
	}
	if addr > End {
		return End
	}
	return addr
}

// Offset shifts an address by whole days and returns the resulting address.
// It does not clamp; callers clamp explicitly when they need an in-range
// result.
func Offset(addr string, days int) (string, error) {
	t, err := ParseAddress(addr)
	if err != nil {
		return "", err
	}
	return FormatAddress(t.AddDate(0, 0, days)), nil
}

// Addresses returns every address in [Start, End] in ascending order.
func Addresses() []string {
	start, _ := ParseAddress(Start)
	end, _ := ParseAddress(End)

	var out []string
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		out = append(out, FormatAddress(t))
	}
	return out
}
