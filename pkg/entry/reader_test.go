package entry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawCSV builds a minimal export with a header and the given rows.
func rawCSV(rows ...string) string {
	header := strings.Join(Columns, ",")
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

// row builds a full-width export row from the fields that matter here.
func row(username, comment, m1, m2, m3, actionType string) string {
	fields := make([]string, len(Columns))
	fields[colProfileURL] = "https://example.com/" + username
	fields[colUsername] = username
	fields[colPosted] = "2w"
	fields[colComment] = comment
	fields[colMention1] = m1
	fields[colMention2] = m2
	fields[colMention3] = m3
	fields[colActionType] = actionType
	return strings.Join(fields, ",")
}

func TestReadRaw_When_HeaderPresent(t *testing.T) {
	t.Parallel()

	rows, err := ReadRaw(strings.NewReader(rawCSV(
		row("alice", "hi", "x", "y", "z", "1 like"),
	)))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0][colUsername])
}

func TestReadRaw_When_RaggedRows(t *testing.T) {
	t.Parallel()

	// Export rows sometimes drop trailing columns.
	input := strings.Join(Columns, ",") + "\n" + "https://example.com/a,,alice\n"
	rows, err := ReadRaw(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(Columns))
	assert.Equal(t, "", rows[0][colActionType])
}

func TestReadRaw_When_Empty(t *testing.T) {
	t.Parallel()

	_, err := ReadRaw(strings.NewReader(""))

	assert.Error(t, err)
}

func TestFromRow_CollectsMentionsAndLikes(t *testing.T) {
	t.Parallel()

	rows, err := ReadRaw(strings.NewReader(rawCSV(
		row("Alice", "good luck @dave", "X", "y", "Z", "15 likes"),
	)))
	require.NoError(t, err)

	e := FromRow(rows[0])

	assert.Equal(t, "alice", e.Username)
	assert.Equal(t, 15, e.Likes)
	assert.Equal(t, []string{"dave", "x", "y", "z"}, e.Mentions)
	assert.Equal(t, "https://example.com/Alice", e.ProfileURL)
}

func TestEntries_DropsEmptyUsernames(t *testing.T) {
	t.Parallel()

	rows, err := ReadRaw(strings.NewReader(rawCSV(
		row("alice", "", "x", "y", "z", ""),
		row("", "orphan row", "x", "y", "z", ""),
	)))
	require.NoError(t, err)

	entries := Entries(rows)

	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
}
