package entry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_RemovesExactDuplicatesOnly(t *testing.T) {
	t.Parallel()

	a := []string{"u1", "", "alice", "", "", "hello", "x", "", "y", "", "z", "", "1 like", ""}
	aCopy := append([]string(nil), a...)
	b := append([]string(nil), a...)
	b[5] = "hello again" // same user, different comment: a legitimate second entry

	cleaned, stats := Clean([][]string{a, aCopy, b})

	assert.Len(t, cleaned, 2)
	assert.Equal(t, 3, stats.RowsIn)
	assert.Equal(t, 2, stats.RowsOut)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, stats.Participants)
}

func TestClean_KeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	first := make([]string, len(Columns))
	first[colUsername] = "alice"
	second := make([]string, len(Columns))
	second[colUsername] = "bob"
	dup := append([]string(nil), first...)

	cleaned, _ := Clean([][]string{first, second, dup})

	require.Len(t, cleaned, 2)
	assert.Equal(t, "alice", cleaned[0][colUsername])
	assert.Equal(t, "bob", cleaned[1][colUsername])
}

func TestClean_When_NoDuplicates(t *testing.T) {
	t.Parallel()

	a := make([]string, len(Columns))
	a[colUsername] = "alice"

	cleaned, stats := Clean([][]string{a})

	assert.Len(t, cleaned, 1)
	assert.Equal(t, 0, stats.Duplicates)
}

func TestWrite_RoundTripsThroughReadRaw(t *testing.T) {
	t.Parallel()

	in := make([]string, len(Columns))
	in[colUsername] = "alice"
	in[colComment] = "hello, with a comma"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, [][]string{in}))

	assert.True(t, strings.HasPrefix(buf.String(), Columns[0]+","))

	rows, err := ReadRaw(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, in, rows[0])
}
