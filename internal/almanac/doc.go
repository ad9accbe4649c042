// Package almanac implements the project calendar for the daybook corpus.
//
// The corpus covers one revolutionary year, 1775-07-04 through 1776-07-03
// inclusive. Every publication date in the real calendar maps onto exactly
// one address in that window: a wall-clock month/day on or after July 4
// falls in label-year 1775, anything earlier falls in label-year 1776.
// The mapping is a pure function of (month, day) so the anniversary cycle
// repeats every real year without configuration.
//
// Addresses are fixed-width "YYYY-MM-DD" strings. Because the format is
// zero-padded, lexicographic comparison agrees with chronological order,
// which is what Clamp and the stores' sorted listings rely on.
//
// All arithmetic goes through the standard library's proleptic Gregorian
// calendar, so the 1776 leap day is handled correctly.
package almanac
