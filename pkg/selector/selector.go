// Package selector turns a cleaned entry list into a winner list plus
// per-user engagement scores.
//
// The rules: an entry is valid when it mentions at least MinMentions
// other users. Each valid entry is worth 1 ticket plus one per like;
// a user's winning score is the sum over their valid entries. Winners
// are drawn by weighted sampling without replacement, so a user can
// win at most once and the draw is reproducible for a given seed.
package selector

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/dkoosis/pick/pkg/entry"
)

// Defaults for the configuration surface.
const (
	DefaultMinMentions = 3
	DefaultWinners     = 10
	DefaultHighVolume  = 50
)

// ErrEmptyInput signals that no valid entries reached aggregation or
// drawing. A zero-winner giveaway is an upstream pipeline bug, not a
// result, so it surfaces as an error rather than an empty list.
var ErrEmptyInput = errors.New("no valid entries")

// UserScore is one user's aggregated standing.
type UserScore struct {
	Username     string `json:"username"`
	ProfileURL   string `json:"profile_url,omitempty"`
	ValidEntries int    `json:"valid_entries"`
	TotalLikes   int    `json:"total_likes"`
	Score        int    `json:"score"` // ValidEntries + TotalLikes, always >= ValidEntries
}

// Result is the outcome of a draw.
type Result struct {
	Winners   []string // draw order, no duplicates
	Shortfall int      // how many requested winners went unfilled
}

// FilterValid keeps entries mentioning at least minMentions users.
// Entries with empty comment text are still eligible; only the mention
// count matters. Pure: the input slice is not modified.
func FilterValid(entries []entry.Entry, minMentions int) []entry.Entry {
	if minMentions <= 0 {
		minMentions = DefaultMinMentions
	}
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Mentions) >= minMentions {
			out = append(out, e)
		}
	}
	return out
}

// Aggregate groups valid entries by username and folds each group into
// a UserScore. Every entry contributes at least 1 to Score, so no user
// in the returned map can have a zero score.
func Aggregate(valid []entry.Entry) (map[string]UserScore, error) {
	if len(valid) == 0 {
		return nil, ErrEmptyInput
	}
	scores := make(map[string]UserScore)
	for _, e := range valid {
		s := scores[e.Username]
		s.Username = e.Username
		if s.ProfileURL == "" {
			s.ProfileURL = e.ProfileURL
		}
		s.ValidEntries++
		s.TotalLikes += e.Likes
		s.Score = s.ValidEntries + s.TotalLikes
		scores[e.Username] = s
	}
	return scores, nil
}

// Draw picks up to k distinct winners, each draw weighted by Score.
// When fewer than k candidates exist, all of them win and Shortfall
// records the gap. The same scores and seed always produce the same
// ordered winner list.
func Draw(scores map[string]UserScore, k int, seed int64) (Result, error) {
	if len(scores) == 0 {
		return Result{}, ErrEmptyInput
	}
	if k <= 0 {
		return Result{}, fmt.Errorf("winner count must be positive, got %d", k)
	}

	pool := newPool(scores)
	rng := rand.New(rand.NewSource(seed))

	n := min(k, len(pool.names))
	res := Result{Winners: make([]string, 0, n), Shortfall: k - len(pool.names)}
	if res.Shortfall < 0 {
		res.Shortfall = 0
	}
	for i := 0; i < n; i++ {
		res.Winners = append(res.Winners, pool.draw(rng))
	}
	return res, nil
}

// FlagHighVolume returns users whose valid-entry count exceeds
// threshold, highest first, for manual spam review. It reads scores
// and nothing else; flagged users stay eligible.
func FlagHighVolume(scores map[string]UserScore, threshold int) []string {
	if threshold <= 0 {
		threshold = DefaultHighVolume
	}
	var flagged []string
	for name, s := range scores {
		if s.ValidEntries > threshold {
			flagged = append(flagged, name)
		}
	}
	sort.Slice(flagged, func(i, j int) bool {
		a, b := scores[flagged[i]], scores[flagged[j]]
		if a.ValidEntries != b.ValidEntries {
			return a.ValidEntries > b.ValidEntries
		}
		return flagged[i] < flagged[j]
	})
	return flagged
}

// pool is a weighted candidate set supporting removal. Cumulative
// weights make each draw a single uniform variate plus a binary
// search; removing a winner shifts the cumulatives after it.
type pool struct {
	names []string
	cum   []int64 // cum[i] = sum of weights 0..i
}

// newPool materializes the score map in sorted-username order so the
// interval layout never depends on map iteration order. Fairness does
// not require this, reproducibility does.
func newPool(scores map[string]UserScore) *pool {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	cum := make([]int64, len(names))
	var total int64
	for i, name := range names {
		total += int64(scores[name].Score)
		cum[i] = total
	}
	return &pool{names: names, cum: cum}
}

// draw removes and returns one candidate, probability proportional to
// remaining weight. The pool must be non-empty.
func (p *pool) draw(rng *rand.Rand) string {
	total := p.cum[len(p.cum)-1]
	x := rng.Int63n(total)

	// First index whose cumulative weight exceeds x.
	i := sort.Search(len(p.cum), func(i int) bool { return p.cum[i] > x })
	name := p.names[i]

	var w int64
	if i == 0 {
		w = p.cum[0]
	} else {
		w = p.cum[i] - p.cum[i-1]
	}
	p.names = append(p.names[:i], p.names[i+1:]...)
	p.cum = append(p.cum[:i], p.cum[i+1:]...)
	for j := i; j < len(p.cum); j++ {
		p.cum[j] -= w
	}
	return name
}
