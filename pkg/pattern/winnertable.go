package pattern

// WinnerTable represents the drawn winners with their engagement
// detail, in draw order.
type WinnerTable struct {
	Label     string
	Rows      []WinnerRow
	Shortfall int // requested winners that went unfilled
}

// WinnerRow is one winner's detail line.
type WinnerRow struct {
	Rank         int
	Username     string
	ProfileURL   string
	ValidEntries int
	TotalLikes   int
	Score        int
}

func (w *WinnerTable) Type() PatternType { return PatternTypeWinnerTable }
