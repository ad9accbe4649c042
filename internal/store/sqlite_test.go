package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T, table string) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "daybook.db"), table)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	s := openTestSQLite(t, "days")

	_, err := s.Load("1775-07-04")
	require.ErrorIs(t, err, ErrNotFound)

	body := []byte(`{"date": "1775-07-04"}`)
	require.NoError(t, s.Save("1775-07-04", body))

	ok, err := s.Exists("1775-07-04")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Load("1775-07-04")
	require.NoError(t, err)
	assert.Equal(t, body, got)

	// Save replaces the whole document.
	require.NoError(t, s.Save("1775-07-04", []byte("v2")))
	got, err = s.Load("1775-07-04")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestSQLiteListSorted(t *testing.T) {
	s := openTestSQLite(t, "intake")

	for _, addr := range []string{"1776-06-01", "1775-07-04", "1776-02-29"} {
		require.NoError(t, s.Save(addr, []byte("{}")))
	}

	addrs, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"1775-07-04", "1776-02-29", "1776-06-01"}, addrs)
}

func TestSQLiteSharedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")

	days, err := OpenSQLite(path, "days")
	require.NoError(t, err)
	defer days.Close()

	intake, err := OpenSQLite(path, "intake")
	require.NoError(t, err)
	defer intake.Close()

	require.NoError(t, days.Save("1775-07-04", []byte("day")))
	require.NoError(t, intake.Save("1775-07-04", []byte("pool")))

	got, err := days.Load("1775-07-04")
	require.NoError(t, err)
	assert.Equal(t, []byte("day"), got)

	got, err = intake.Load("1775-07-04")
	require.NoError(t, err)
	assert.Equal(t, []byte("pool"), got)
}

func TestOpenSQLiteRejectsUnknownTable(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "x.db"), "records; DROP TABLE days")
	assert.Error(t, err)
}
