package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/pick/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	case *pattern.WinnerTable:
		return t.renderWinnerTable(v)
	case *pattern.BarChart:
		return t.renderBarChart(v)
	case *pattern.Comparison:
		return t.renderComparison(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Bold.Render(s.Label))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	if l.Label != "" {
		header := l.Label
		if l.TotalCount > len(l.Items) {
			header += fmt.Sprintf(" (top %d of %d)", len(l.Items), l.TotalCount)
		}
		sb.WriteString(t.theme.Bold.Render(header))
		sb.WriteString("\n")
	}

	maxName, maxMetric := 0, 0
	for _, item := range l.Items {
		if w := runewidth.StringWidth(item.Name); w > maxName {
			maxName = w
		}
		if w := runewidth.StringWidth(item.Metric); w > maxMetric {
			maxMetric = w
		}
	}
	if maxName > 40 {
		maxName = 40
	}

	for _, item := range l.Items {
		sb.WriteString("  ")
		if l.ShowRank {
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", item.Rank)))
		}
		name := runewidth.Truncate(item.Name, maxName, "...")
		sb.WriteString(t.theme.Primary.Render(runewidth.FillRight(name, maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Warning.Render(runewidth.FillLeft(item.Metric, maxMetric)))
		if item.Context != "" {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Muted.Render(item.Context))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderWinnerTable(w *pattern.WinnerTable) string {
	if len(w.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	if w.Label != "" {
		sb.WriteString(t.theme.Bold.Render(w.Label))
		sb.WriteString("\n")
	}

	maxName := 0
	for _, r := range w.Rows {
		if width := runewidth.StringWidth(r.Username); width > maxName {
			maxName = width
		}
	}
	if maxName > 40 {
		maxName = 40
	}

	for _, r := range w.Rows {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Success.Render(t.theme.Icons.Win + " "))
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", r.Rank)))
		name := runewidth.Truncate(r.Username, maxName, "...")
		sb.WriteString(t.theme.Primary.Render(runewidth.FillRight(name, maxName)))
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  %d entries, %d likes", r.ValidEntries, r.TotalLikes)))
		sb.WriteString(t.theme.Warning.Render(fmt.Sprintf("  score %d", r.Score)))
		if r.ProfileURL != "" {
			sb.WriteString("\n      ")
			sb.WriteString(t.theme.Muted.Render(r.ProfileURL))
		}
		sb.WriteString("\n")
	}

	if w.Shortfall > 0 {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Warning.Render(fmt.Sprintf(
			"%s %d requested winner(s) unfilled: only %d eligible participant(s)",
			t.theme.Icons.Warn, w.Shortfall, len(w.Rows))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderBarChart(b *pattern.BarChart) string {
	if len(b.Bars) == 0 {
		return ""
	}
	var sb strings.Builder
	if b.Label != "" {
		sb.WriteString(t.theme.Bold.Render(b.Label))
		sb.WriteString("\n")
	}

	maxVal := b.Max
	maxLabel := 0
	for _, bar := range b.Bars {
		if bar.Value > maxVal {
			maxVal = bar.Value
		}
		if w := runewidth.StringWidth(bar.Label); w > maxLabel {
			maxLabel = w
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	if maxLabel > 24 {
		maxLabel = 24
	}

	// Leave room for label, gutter, and value suffix.
	barSpace := t.width - maxLabel - 12
	if barSpace < 10 {
		barSpace = 10
	}

	for _, bar := range b.Bars {
		label := runewidth.Truncate(bar.Label, maxLabel, "...")
		sb.WriteString("  ")
		sb.WriteString(t.theme.Primary.Render(runewidth.FillRight(label, maxLabel)))
		sb.WriteString(" ")

		n := int(bar.Value / maxVal * float64(barSpace))
		if n < 1 && bar.Value > 0 {
			n = 1
		}
		sb.WriteString(t.theme.Success.Render(strings.Repeat(t.theme.Icons.Bar, n)))
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf(" %.0f%s", bar.Value, b.Unit)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderComparison(c *pattern.Comparison) string {
	if len(c.Changes) == 0 {
		return ""
	}
	var sb strings.Builder
	if c.Label != "" {
		sb.WriteString(t.theme.Bold.Render(c.Label))
		sb.WriteString("\n")
	}
	for _, item := range c.Changes {
		sb.WriteString("  ")
		sb.WriteString(item.Label + ": ")
		sb.WriteString(t.theme.Success.Render(c.GroupA + " " + item.ValueA + item.Unit))
		sb.WriteString(t.theme.Muted.Render(" vs "))
		sb.WriteString(t.theme.Primary.Render(c.GroupB + " " + item.ValueB + item.Unit))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Win, t.theme.Success
	case "error":
		return t.theme.Icons.Warn, t.theme.Error
	case "warning":
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}
