package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrLegacyShape marks a record still in the pre-migration shape. Single
// record operations refuse such records; run migrate-schema first.
var ErrLegacyShape = errors.New("record uses legacy shape; run migrate-schema")

// Legacy category keys from the pre-migration record shape.
const (
	LegacyCongress = "congress"
	LegacyBattles  = "battles"
	LegacyDeeds    = "deeds"
)

var legacyKeys = []string{LegacyCongress, LegacyBattles, LegacyDeeds}

// Raw is a decoded-but-untyped record, used where shape has to be probed
// before committing to a variant (audit, migration).
type Raw map[string]json.RawMessage

// DecodeRaw parses stored bytes into a Raw for shape probing.
func DecodeRaw(data []byte) (Raw, error) {
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed record: %w", err)
	}
	if raw == nil {
		return nil, errors.New("malformed record: null document")
	}
	return raw, nil
}

// HasLegacyShape reports whether any legacy category key is present.
func (r Raw) HasLegacyShape() bool {
	for _, k := range legacyKeys {
		if _, ok := r[k]; ok {
			return true
		}
	}
	return false
}

// IsArray reports whether key is present and holds a JSON array.
func (r Raw) IsArray(key string) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	trimmed := bytes.TrimLeft(v, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Entries decodes the named key as an entry sequence. The second return
// is false when the key is absent.
func (r Raw) Entries(key string) ([]Entry, bool, error) {
	v, ok := r[key]
	if !ok {
		return nil, false, nil
	}
	var out []Entry
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, true, fmt.Errorf("field %q: %w", key, err)
	}
	return out, true, nil
}

// Date returns the record's date field, or "" when absent or not a string.
func (r Raw) Date() string {
	v, ok := r["date"]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// DecodeDay parses stored bytes as a current-shape record. Legacy-shape
// records are rejected with ErrLegacyShape; anything else that fails to
// decode is a parse failure.
func DecodeDay(data []byte) (*Day, error) {
	raw, err := DecodeRaw(data)
	if err != nil {
		return nil, err
	}
	if raw.HasLegacyShape() {
		return nil, ErrLegacyShape
	}
	var d Day
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("malformed record: %w", err)
	}
	d.Normalize()
	return &d, nil
}

// DecodeIntake parses stored bytes as a candidate pool.
func DecodeIntake(data []byte) (*Intake, error) {
	var n Intake
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("malformed intake pool: %w", err)
	}
	n.Normalize()
	return &n, nil
}

// EncodeDay serializes a record in the canonical stored form: two-space
// indented JSON with a trailing newline, matching what the sourcing
// pipeline writes and what curators hand-edit.
func EncodeDay(d *Day) ([]byte, error) {
	d.Normalize()
	return encodeIndented(d)
}

// EncodeIntake serializes a candidate pool in the canonical stored form.
func EncodeIntake(n *Intake) ([]byte, error) {
	n.Normalize()
	return encodeIndented(n)
}

func encodeIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
