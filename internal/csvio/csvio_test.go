package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podiumlabs/podium/pkg/errors"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTableStripsBOM(t *testing.T) {
	path := writeFixture(t, "country.csv", "\xEF\xBB\xBFnoc,country\nFRA,France\n")

	recs, err := ReadTable(path, []string{"noc", "country"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "FRA", recs[0]["noc"])
	assert.Equal(t, "France", recs[0]["country"])
}

func TestReadTableWithoutBOM(t *testing.T) {
	path := writeFixture(t, "country.csv", "noc,country\nNED,Netherlands\n")

	recs, err := ReadTable(path, []string{"noc"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "NED", recs[0]["noc"])
}

func TestReadTableMissingColumnFails(t *testing.T) {
	path := writeFixture(t, "country.csv", "noc\nFRA\n")

	_, err := ReadTable(path, []string{"noc", "country"})
	require.Error(t, err)
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "country")
}

func TestReadTableKeepsExtraColumns(t *testing.T) {
	path := writeFixture(t, "athletes.csv", "code,name,extra\n1,RINER Teddy,x\n")

	recs, err := ReadTable(path, []string{"code", "name"})
	require.NoError(t, err)
	assert.Equal(t, "x", recs[0]["extra"])
}

func TestReadTableShortRow(t *testing.T) {
	path := writeFixture(t, "t.csv", "a,b,c\n1,2\n")

	recs, err := ReadTable(path, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "2", recs[0]["b"])
	assert.Equal(t, "", recs[0]["c"])
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "absent.csv"), nil)
	assert.Error(t, err)
}

func TestWriteTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tally.csv")

	header := []string{"noc", "total"}
	rows := [][]string{{"FRA", "64"}, {"NED", "34"}}
	require.NoError(t, WriteTable(path, header, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 3 && data[0] == 0xEF, "output must start with a BOM")

	recs, err := ReadTable(path, header)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "64", recs[0]["total"])
}

func TestWriteTableReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.csv")
	require.NoError(t, WriteTable(path, []string{"a"}, [][]string{{"old"}}))
	require.NoError(t, WriteTable(path, []string{"a"}, [][]string{{"new"}}))

	recs, err := ReadTable(path, []string{"a"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "new", recs[0]["a"])

	// No temp leftovers in the directory.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
