package curate

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/internal/record"
)

func TestAuditCleanCorpus(t *testing.T) {
	days, _ := newTestStores(t)

	for _, addr := range []string{"1775-08-01", "1775-08-02"} {
		d := record.NewDay(addr)
		d.Soldiers = append(d.Soldiers, record.Entry{Quote: "promoted"})
		saveDay(t, days, d)
	}

	report, err := (&Auditor{Days: days}).Audit()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Zero(t, report.Violations())
	assert.NotEmpty(t, report.RunID)
}

func TestAuditEmptyPrimary(t *testing.T) {
	days, _ := newTestStores(t)

	// Scaffolded but never promoted: exactly one empty-primary violation.
	saveDay(t, days, record.NewDay("1775-08-01"))

	d := record.NewDay("1775-08-02")
	d.Soldiers = append(d.Soldiers, record.Entry{Quote: "promoted"})
	saveDay(t, days, d)

	report, err := (&Auditor{Days: days}).Audit()
	require.NoError(t, err)
	assert.Equal(t, []string{"1775-08-01"}, report.EmptyPrimary)
	assert.Equal(t, 1, report.Violations())
}

func TestAuditOverCap(t *testing.T) {
	days, _ := newTestStores(t)

	d := record.NewDay("1775-08-01")
	for i := 0; i < 4; i++ {
		d.Soldiers = append(d.Soldiers, record.Entry{Quote: fmt.Sprintf("entry %d", i)})
	}
	for i := 0; i < 3; i++ {
		d.Voices = append(d.Voices, record.Entry{Quote: fmt.Sprintf("voice %d", i)})
	}
	saveDay(t, days, d)

	report, err := (&Auditor{Days: days}).Audit()
	require.NoError(t, err)
	// One record, counted once however many categories overflow.
	assert.Equal(t, []string{"1775-08-01"}, report.OverCap)
	assert.Empty(t, report.EmptyPrimary)
}

func TestAuditMissingAndMalformedFields(t *testing.T) {
	days, _ := newTestStores(t)

	// Category key absent entirely.
	require.NoError(t, days.Save("1775-08-01", []byte(`{
  "date": "1775-08-01",
  "soldiers_day": [{"quote": "q"}],
  "men_of_command": [],
  "continental_congress_committees": []
}`)))

	// Category present but not a sequence.
	require.NoError(t, days.Save("1775-08-02", []byte(`{
  "date": "1775-08-02",
  "soldiers_day": [{"quote": "q"}],
  "men_of_command": "general orders",
  "continental_congress_committees": [],
  "voices_beyond_the_line": []
}`)))

	// A legacy-shape record lacks all four current keys.
	require.NoError(t, days.Save("1775-08-03", []byte(`{
  "date": "1775-08-03",
  "deeds": [{"quote": "q"}],
  "battles": [],
  "congress": []
}`)))

	report, err := (&Auditor{Days: days}).Audit()
	require.NoError(t, err)
	assert.Equal(t, []string{"1775-08-01", "1775-08-02", "1775-08-03"}, report.MissingFields)
	assert.Empty(t, report.ParseFailures)
}

func TestAuditParseFailureContinuesScan(t *testing.T) {
	days, _ := newTestStores(t)

	require.NoError(t, days.Save("1775-08-01", []byte("{corrupt")))

	d := record.NewDay("1775-08-02")
	d.Soldiers = append(d.Soldiers, record.Entry{Quote: "fine"})
	saveDay(t, days, d)

	// Array holds garbage entries.
	require.NoError(t, days.Save("1775-08-03", []byte(`{
  "date": "1775-08-03",
  "soldiers_day": [42],
  "men_of_command": [],
  "continental_congress_committees": [],
  "voices_beyond_the_line": []
}`)))

	report, err := (&Auditor{Days: days}).Audit()
	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, []string{"1775-08-01", "1775-08-03"}, report.ParseFailures)
}

func TestAuditNeverMutates(t *testing.T) {
	days, _ := newTestStores(t)

	require.NoError(t, days.Save("1775-08-01", []byte("{corrupt")))
	saveDay(t, days, record.NewDay("1775-08-02"))

	before := make(map[string][]byte)
	addrs, err := days.List()
	require.NoError(t, err)
	for _, addr := range addrs {
		before[addr], err = days.Load(addr)
		require.NoError(t, err)
	}

	_, err = (&Auditor{Days: days}).Audit()
	require.NoError(t, err)

	for _, addr := range addrs {
		after, err := days.Load(addr)
		require.NoError(t, err)
		assert.Equal(t, before[addr], after)
	}
}

func TestReportRenderGolden(t *testing.T) {
	report := &Report{
		RunID:         "static-for-golden",
		Scanned:       370,
		ParseFailures: []string{"1775-08-01"},
		MissingFields: []string{"1775-09-14"},
		EmptyPrimary: []string{
			"1775-10-01", "1775-10-02", "1775-10-03", "1775-10-04",
			"1775-10-05", "1775-10-06", "1775-10-07", "1775-10-08",
			"1775-10-09", "1775-10-10", "1775-10-11", "1775-10-12",
		},
		OverCap: nil,
	}

	var buf bytes.Buffer
	report.Render(&buf)

	g := goldie.New(t)
	g.Assert(t, "audit_report", buf.Bytes())
}
