package entry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CleanStats summarizes a cleaning pass for the report.
type CleanStats struct {
	RowsIn       int
	RowsOut      int
	Duplicates   int
	Participants int // distinct normalized usernames after cleaning
}

// Clean removes rows that are byte-identical to an earlier row, every
// column compared, first occurrence kept. Multiple distinct entries
// from the same user survive; only exact scrape duplicates go.
func Clean(rows [][]string) ([][]string, CleanStats) {
	stats := CleanStats{RowsIn: len(rows)}
	seen := make(map[string]struct{}, len(rows))
	users := make(map[string]struct{})

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
		if u := NormalizeUsername(row[colUsername]); u != "" {
			users[u] = struct{}{}
		}
	}

	stats.RowsOut = len(out)
	stats.Participants = len(users)
	return out, stats
}

// WriteFile writes cleaned rows to path under the canonical header.
func WriteFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cleaned csv: %w", err)
	}

	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close cleaned csv: %w", err)
	}
	return nil
}

// Write writes the canonical header followed by rows.
func Write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush cleaned csv: %w", err)
	}
	return nil
}
