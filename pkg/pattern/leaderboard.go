package pattern

// Leaderboard represents a ranked list of users by metric.
type Leaderboard struct {
	Label      string
	MetricName string // e.g., "Score", "Valid entries"
	Items      []LeaderboardItem
	TotalCount int // total before filtering to top N
	ShowRank   bool
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name    string  // username
	Metric  string  // formatted value (e.g., "163", "12 entries")
	Value   float64 // numeric value for sorting
	Rank    int
	Context string // optional extra context
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
