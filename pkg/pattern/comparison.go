package pattern

// Comparison represents group-vs-group metric comparisons, e.g.
// average engagement of winners against everyone else.
type Comparison struct {
	Label   string
	GroupA  string // e.g., "Winners"
	GroupB  string // e.g., "Non-winners"
	Changes []ComparisonItem
}

// ComparisonItem is a single metric compared across both groups.
type ComparisonItem struct {
	Label  string
	ValueA string
	ValueB string
	Unit   string
}

func (c *Comparison) Type() PatternType { return PatternTypeComparison }
