// Package reveal animates the winner announcement in the terminal.
// The draw itself happens before the program starts; reveal is purely
// presentational and cannot affect reproducibility.
package reveal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/pick/pkg/pattern"
)

// Run launches the reveal program for an already-drawn winner table.
func Run(table *pattern.WinnerTable) error {
	program := tea.NewProgram(newModel(table))
	_, err := program.Run()
	return err
}

const drumrollDelay = 1200 * time.Millisecond

type model struct {
	table    *pattern.WinnerTable
	spinner  spinner.Model
	revealed int // how many winners are visible
	rolling  bool
	done     bool

	titleStyle  lipgloss.Style
	winnerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
}

func newModel(table *pattern.WinnerTable) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	return model{
		table:       table,
		spinner:     sp,
		rolling:     true,
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		winnerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

type revealMsg struct{}

func nextReveal() tea.Cmd {
	return tea.Tick(drumrollDelay, func(time.Time) tea.Msg { return revealMsg{} })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, nextReveal())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			if m.done {
				return m, tea.Quit
			}
			// Any other key skips the drumroll for the next winner.
			return m.advance()
		}
	case revealMsg:
		return m.advance()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) advance() (tea.Model, tea.Cmd) {
	if m.revealed < len(m.table.Rows) {
		m.revealed++
	}
	if m.revealed == len(m.table.Rows) {
		m.rolling = false
		m.done = true
		return m, nil
	}
	return m, nextReveal()
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.titleStyle.Render("And the winners are..."))
	sb.WriteString("\n\n")

	for i := 0; i < m.revealed; i++ {
		r := m.table.Rows[i]
		sb.WriteString(m.winnerStyle.Render(fmt.Sprintf("  ★ %2d. %s", r.Rank, r.Username)))
		sb.WriteString(m.mutedStyle.Render(fmt.Sprintf("  (%d entries, %d likes, score %d)", r.ValidEntries, r.TotalLikes, r.Score)))
		sb.WriteString("\n")
	}

	if m.rolling {
		sb.WriteString("\n  ")
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.mutedStyle.Render(" drawing next winner..."))
		sb.WriteString("\n")
	} else {
		if m.table.Shortfall > 0 {
			sb.WriteString("\n  ")
			sb.WriteString(m.mutedStyle.Render(fmt.Sprintf(
				"%d requested winner(s) unfilled: only %d eligible participant(s)",
				m.table.Shortfall, len(m.table.Rows))))
			sb.WriteString("\n")
		}
		sb.WriteString("\n  ")
		sb.WriteString(m.mutedStyle.Render("congratulations to all the winners — press any key to exit"))
		sb.WriteString("\n")
	}
	return sb.String()
}
