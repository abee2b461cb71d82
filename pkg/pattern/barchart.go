package pattern

// BarChart represents labelled horizontal bars, e.g. winner scores.
type BarChart struct {
	Label string
	Bars  []Bar
	Unit  string  // e.g., "pts"
	Max   float64 // 0 = auto-detect from Bars
}

// Bar is a single labelled bar.
type Bar struct {
	Label string
	Value float64
}

func (b *BarChart) Type() PatternType { return PatternTypeBarChart }
