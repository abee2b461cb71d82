// Package pattern defines the semantic data types for pick's report
// output. Patterns are pure data — renderers decide presentation.
package pattern

// PatternType identifies the kind of visualization pattern.
type PatternType string

const (
	PatternTypeSummary     PatternType = "summary"
	PatternTypeLeaderboard PatternType = "leaderboard"
	PatternTypeWinnerTable PatternType = "winner-table"
	PatternTypeBarChart    PatternType = "bar-chart"
	PatternTypeComparison  PatternType = "comparison"
)

// Pattern is the interface all report patterns implement.
// Patterns hold data; renderers decide how to present it.
type Pattern interface {
	Type() PatternType
}
