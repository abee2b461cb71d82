// Package report assembles render patterns from pipeline results.
// It owns no presentation; renderers in pkg/render do.
package report

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/pick/pkg/entry"
	"github.com/dkoosis/pick/pkg/pattern"
	"github.com/dkoosis/pick/pkg/selector"
)

// Clean builds the cleaning-stage report.
func Clean(stats entry.CleanStats, outPath string) []pattern.Pattern {
	dupKind := "success"
	if stats.Duplicates > 0 {
		dupKind = "warning"
	}
	return []pattern.Pattern{
		&pattern.Summary{
			Label: "Cleaning report",
			Kind:  pattern.SummaryKindClean,
			Metrics: []pattern.SummaryItem{
				{Label: "Rows in", Value: strconv.Itoa(stats.RowsIn), Kind: "info"},
				{Label: "Duplicates removed", Value: strconv.Itoa(stats.Duplicates), Kind: dupKind},
				{Label: "Rows out", Value: strconv.Itoa(stats.RowsOut), Kind: "success"},
				{Label: "Unique participants", Value: strconv.Itoa(stats.Participants), Kind: "info"},
				{Label: "Written to", Value: outPath, Kind: "info"},
			},
		},
	}
}

// Draw builds the drawing-stage report: a summary of the draw
// parameters followed by the winner table. The seed always appears so
// the draw can be re-run for audit.
func Draw(res selector.Result, scores map[string]selector.UserScore, k int, seed int64, totalEntries, validEntries int) []pattern.Pattern {
	summary := &pattern.Summary{
		Label: "Giveaway draw",
		Kind:  pattern.SummaryKindDraw,
		Metrics: []pattern.SummaryItem{
			{Label: "Entries analyzed", Value: strconv.Itoa(totalEntries), Kind: "info"},
			{Label: "Valid entries", Value: strconv.Itoa(validEntries), Kind: "info"},
			{Label: "Eligible participants", Value: strconv.Itoa(len(scores)), Kind: "info"},
			{Label: "Winners requested", Value: strconv.Itoa(k), Kind: "info"},
			{Label: "Seed", Value: strconv.FormatInt(seed, 10), Kind: "info"},
		},
	}

	table := &pattern.WinnerTable{
		Label:     "Winners",
		Shortfall: res.Shortfall,
		Rows:      make([]pattern.WinnerRow, 0, len(res.Winners)),
	}
	for i, name := range res.Winners {
		s := scores[name]
		table.Rows = append(table.Rows, pattern.WinnerRow{
			Rank:         i + 1,
			Username:     name,
			ProfileURL:   s.ProfileURL,
			ValidEntries: s.ValidEntries,
			TotalLikes:   s.TotalLikes,
			Score:        s.Score,
		})
	}

	return []pattern.Pattern{summary, table}
}

// Stats builds the post-hoc engagement report: winner score chart,
// winners-vs-rest comparison, and the high-volume review list.
func Stats(scores map[string]selector.UserScore, winners []string, highVolume []string, highVolumeThreshold int) []pattern.Pattern {
	var patterns []pattern.Pattern

	winnerSet := make(map[string]bool, len(winners))
	var present []string
	for _, w := range winners {
		if _, ok := scores[w]; !ok {
			continue // named winner without valid entries; excluded
		}
		winnerSet[w] = true
		present = append(present, w)
	}

	if len(present) > 0 {
		chart := &pattern.BarChart{Label: "Winner scores", Unit: " pts"}
		for _, w := range present {
			chart.Bars = append(chart.Bars, pattern.Bar{Label: w, Value: float64(scores[w].Score)})
		}
		patterns = append(patterns, chart)
		patterns = append(patterns, comparison(scores, winnerSet, len(present)))
	}

	if len(highVolume) > 0 {
		lb := &pattern.Leaderboard{
			Label:      fmt.Sprintf("High-volume users (more than %d valid entries, review manually)", highVolumeThreshold),
			MetricName: "Valid entries",
			ShowRank:   true,
			TotalCount: len(highVolume),
		}
		for i, name := range highVolume {
			lb.Items = append(lb.Items, pattern.LeaderboardItem{
				Name:   name,
				Metric: fmt.Sprintf("%d entries", scores[name].ValidEntries),
				Value:  float64(scores[name].ValidEntries),
				Rank:   i + 1,
			})
		}
		patterns = append(patterns, lb)
	}

	return patterns
}

func comparison(scores map[string]selector.UserScore, winnerSet map[string]bool, winnerCount int) *pattern.Comparison {
	var wEntries, wLikes, nwEntries, nwLikes, nonWinners int
	for name, s := range scores {
		if winnerSet[name] {
			wEntries += s.ValidEntries
			wLikes += s.TotalLikes
		} else {
			nwEntries += s.ValidEntries
			nwLikes += s.TotalLikes
			nonWinners++
		}
	}

	avg := func(total, n int) string {
		if n == 0 {
			return "0.00"
		}
		return fmt.Sprintf("%.2f", float64(total)/float64(n))
	}

	return &pattern.Comparison{
		Label:  "Average engagement",
		GroupA: "winners",
		GroupB: "non-winners",
		Changes: []pattern.ComparisonItem{
			{Label: "Valid entries per user", ValueA: avg(wEntries, winnerCount), ValueB: avg(nwEntries, nonWinners)},
			{Label: "Likes per user", ValueA: avg(wLikes, winnerCount), ValueB: avg(nwLikes, nonWinners)},
		},
	}
}
