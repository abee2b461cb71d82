package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/pick/pkg/pattern"
)

// LLM renders patterns as terse plain text for piped consumption.
// Zero ANSI codes, deterministic layout, one fact per line.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.Leaderboard:
			l.renderLeaderboard(&sb, v)
		case *pattern.WinnerTable:
			l.renderWinnerTable(&sb, v)
		case *pattern.BarChart:
			l.renderBarChart(&sb, v)
		case *pattern.Comparison:
			l.renderComparison(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	if s.Label != "" {
		fmt.Fprintf(sb, "%s\n", strings.ToUpper(s.Label))
	}
	for _, m := range s.Metrics {
		fmt.Fprintf(sb, "%s: %s\n", m.Label, m.Value)
	}
}

func (l *LLM) renderLeaderboard(sb *strings.Builder, lb *pattern.Leaderboard) {
	if lb.Label != "" {
		fmt.Fprintf(sb, "%s\n", strings.ToUpper(lb.Label))
	}
	for _, item := range lb.Items {
		if lb.ShowRank {
			fmt.Fprintf(sb, "%d. %s %s\n", item.Rank, item.Name, item.Metric)
		} else {
			fmt.Fprintf(sb, "%s %s\n", item.Name, item.Metric)
		}
	}
}

func (l *LLM) renderWinnerTable(sb *strings.Builder, w *pattern.WinnerTable) {
	if w.Label != "" {
		fmt.Fprintf(sb, "%s\n", strings.ToUpper(w.Label))
	}
	for _, r := range w.Rows {
		fmt.Fprintf(sb, "%d. %s entries=%d likes=%d score=%d", r.Rank, r.Username, r.ValidEntries, r.TotalLikes, r.Score)
		if r.ProfileURL != "" {
			fmt.Fprintf(sb, " %s", r.ProfileURL)
		}
		sb.WriteString("\n")
	}
	if w.Shortfall > 0 {
		fmt.Fprintf(sb, "WARNING: %d requested winner(s) unfilled, only %d eligible\n", w.Shortfall, len(w.Rows))
	}
}

func (l *LLM) renderBarChart(sb *strings.Builder, b *pattern.BarChart) {
	if b.Label != "" {
		fmt.Fprintf(sb, "%s\n", strings.ToUpper(b.Label))
	}
	for _, bar := range b.Bars {
		fmt.Fprintf(sb, "%s %.0f%s\n", bar.Label, bar.Value, b.Unit)
	}
}

func (l *LLM) renderComparison(sb *strings.Builder, c *pattern.Comparison) {
	if c.Label != "" {
		fmt.Fprintf(sb, "%s\n", strings.ToUpper(c.Label))
	}
	for _, item := range c.Changes {
		fmt.Fprintf(sb, "%s: %s=%s%s %s=%s%s\n",
			item.Label, c.GroupA, item.ValueA, item.Unit, c.GroupB, item.ValueB, item.Unit)
	}
}
