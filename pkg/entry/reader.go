package entry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// The export carries these positional columns. Raw files arrive with
// scraper-generated header names; clean rewrites them to these.
var Columns = []string{
	"profile_url",
	"profile_picture_url",
	"username",
	"post_comment_url",
	"time_elapsed",
	"comment_text",
	"mentioned_user_1_username",
	"mentioned_user_1_url",
	"mentioned_user_2_username",
	"mentioned_user_2_url",
	"mentioned_user_3_username",
	"mentioned_user_3_url",
	"action_type",
	"extra_empty_column",
}

// Column indexes into a raw row.
const (
	colProfileURL = 0
	colUsername   = 2
	colPosted     = 4
	colComment    = 5
	colMention1   = 6
	colMention2   = 8
	colMention3   = 10
	colActionType = 12
)

// ReadRawFile reads an export CSV from disk, returning the data rows
// with the header row stripped. Rows shorter than the canonical column
// set are padded with empty fields so positional access is safe.
func ReadRawFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	return ReadRaw(f)
}

// ReadRaw parses export rows from r. The first row is assumed to be a
// header and discarded.
func ReadRaw(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports are ragged; pad below

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse export csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("export is empty")
	}

	rows := records[1:]
	for i, row := range rows {
		for len(row) < len(Columns) {
			row = append(row, "")
		}
		rows[i] = row[:len(Columns)]
	}
	return rows, nil
}

// FromRow converts one cleaned row into an Entry. Likes come from the
// action_type free text; mentions collapse the three tag columns plus
// any @handles in the comment body.
func FromRow(row []string) Entry {
	username := NormalizeUsername(row[colUsername])
	tagged := []string{row[colMention1], row[colMention2], row[colMention3]}
	return Entry{
		Username:   username,
		ProfileURL: row[colProfileURL],
		Comment:    row[colComment],
		Mentions:   mentionSet(username, tagged, row[colComment]),
		Likes:      ParseLikes(row[colActionType]),
		Posted:     row[colPosted],
	}
}

// Entries converts cleaned rows into Entry values, dropping rows with
// an empty username (a scrape artifact, not a participant).
func Entries(rows [][]string) []Entry {
	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		e := FromRow(row)
		if e.Username == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ReadFile reads a cleaned CSV and converts it straight to entries.
func ReadFile(path string) ([]Entry, error) {
	rows, err := ReadRawFile(path)
	if err != nil {
		return nil, err
	}
	return Entries(rows), nil
}
