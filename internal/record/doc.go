// Package record defines the daybook data model and its wire format.
//
// A Day is the curated record for one address: four category buckets of
// Entry values, where order within a bucket is editorial priority. The
// soldiers_day bucket is the primary category: capped at three entries
// and required to be non-empty once a day is considered published. The
// three secondary buckets are capped at two and may be empty.
//
// An Intake is the uncapped candidate pool for the same address. Its
// candidates carry the curated Entry fields plus the retrieval metadata
// the sourcing pipeline attaches (actor role, source type, provenance
// path). Promotion copies only the Entry part into a Day.
//
// Stored files exist in two shapes. The current shape carries the four
// category keys; the legacy shape carried "congress", "battles" and
// "deeds". DecodeRaw plus the shape probes implement the tagged-variant
// decode: callers try the current shape, fall back to legacy, and treat
// everything else as a parse failure.
package record
