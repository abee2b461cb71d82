package pattern

// SummaryKind identifies which pipeline stage produced the summary.
type SummaryKind string

const (
	SummaryKindClean SummaryKind = "clean"
	SummaryKindDraw  SummaryKind = "draw"
	SummaryKindStats SummaryKind = "stats"
)

// Summary represents high-level metrics and counts.
type Summary struct {
	Label   string
	Kind    SummaryKind // dispatch key for renderers
	Metrics []SummaryItem
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string // e.g., "Duplicates removed", "Participants"
	Value string // formatted value
	Kind  string // "success", "error", "warning", "info" — affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
