package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/pick/pkg/entry"
)

func mkEntry(user string, mentions []string, likes int) entry.Entry {
	return entry.Entry{Username: user, Mentions: mentions, Likes: likes}
}

func TestFilterValid_KeepsThresholdAndAbove(t *testing.T) {
	t.Parallel()

	entries := []entry.Entry{
		mkEntry("a", []string{"x", "y", "z"}, 0),
		mkEntry("b", []string{"x", "y"}, 5),
		mkEntry("c", []string{"w", "x", "y", "z"}, 1),
	}

	valid := FilterValid(entries, 3)

	require.Len(t, valid, 2)
	assert.Equal(t, "a", valid[0].Username)
	assert.Equal(t, "c", valid[1].Username)
	for _, e := range valid {
		assert.GreaterOrEqual(t, len(e.Mentions), 3)
	}
}

func TestFilterValid_When_TagOnlyEntry(t *testing.T) {
	t.Parallel()

	// Empty comment text does not disqualify an entry.
	entries := []entry.Entry{{Username: "a", Comment: "", Mentions: []string{"x", "y", "z"}}}

	assert.Len(t, FilterValid(entries, 3), 1)
}

func TestFilterValid_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	entries := []entry.Entry{mkEntry("a", []string{"x"}, 0), mkEntry("b", []string{"x", "y", "z"}, 0)}

	FilterValid(entries, 3)

	assert.Equal(t, "a", entries[0].Username)
	assert.Len(t, entries, 2)
}

func TestAggregate_Scenario(t *testing.T) {
	t.Parallel()

	// Spec scenario: a has 3 mentions and 0 likes, b only 2 mentions.
	entries := []entry.Entry{
		mkEntry("a", []string{"x", "y", "z"}, 0),
		mkEntry("b", []string{"x", "y"}, 5),
	}

	valid := FilterValid(entries, 3)
	require.Len(t, valid, 1)

	scores, err := Aggregate(valid)
	require.NoError(t, err)

	require.Len(t, scores, 1)
	assert.Equal(t, 1, scores["a"].ValidEntries)
	assert.Equal(t, 0, scores["a"].TotalLikes)
	assert.Equal(t, 1, scores["a"].Score)
}

func TestAggregate_ScoreIsEntriesPlusLikes(t *testing.T) {
	t.Parallel()

	entries := []entry.Entry{
		mkEntry("a", []string{"x", "y", "z"}, 4),
		mkEntry("a", []string{"x", "y", "z"}, 7),
		mkEntry("b", []string{"x", "y", "z"}, 0),
	}

	scores, err := Aggregate(entries)
	require.NoError(t, err)

	assert.Equal(t, 2, scores["a"].ValidEntries)
	assert.Equal(t, 11, scores["a"].TotalLikes)
	assert.Equal(t, 13, scores["a"].Score)
	assert.Equal(t, 1, scores["b"].Score)

	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Score, s.ValidEntries)
		assert.Positive(t, s.Score, "no user in the score map can have a zero score")
	}
}

func TestAggregate_When_Empty(t *testing.T) {
	t.Parallel()

	_, err := Aggregate(nil)

	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDraw_NoDuplicatesAndExactSize(t *testing.T) {
	t.Parallel()

	scores := map[string]UserScore{
		"a": {Username: "a", ValidEntries: 1, TotalLikes: 3, Score: 4},
		"b": {Username: "b", ValidEntries: 2, TotalLikes: 0, Score: 2},
		"c": {Username: "c", ValidEntries: 1, TotalLikes: 0, Score: 1},
		"d": {Username: "d", ValidEntries: 5, TotalLikes: 9, Score: 14},
	}

	res, err := Draw(scores, 3, 7)
	require.NoError(t, err)

	assert.Len(t, res.Winners, 3)
	assert.Equal(t, 0, res.Shortfall)

	seen := make(map[string]bool)
	for _, w := range res.Winners {
		assert.False(t, seen[w], "winner %q drawn twice", w)
		seen[w] = true
	}
}

func TestDraw_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	scores := map[string]UserScore{
		"a": {Username: "a", Score: 3, ValidEntries: 1, TotalLikes: 2},
		"b": {Username: "b", Score: 1, ValidEntries: 1},
		"c": {Username: "c", Score: 8, ValidEntries: 2, TotalLikes: 6},
		"d": {Username: "d", Score: 2, ValidEntries: 2},
	}

	first, err := Draw(scores, 4, 42)
	require.NoError(t, err)
	second, err := Draw(scores, 4, 42)
	require.NoError(t, err)

	assert.Equal(t, first.Winners, second.Winners, "same seed must reproduce the same ordered draw")

	other, err := Draw(scores, 4, 43)
	require.NoError(t, err)
	assert.Len(t, other.Winners, 4)
}

func TestDraw_Scenario_FewerCandidatesThanRequested(t *testing.T) {
	t.Parallel()

	// Spec scenario: 3 equal-weight candidates, k=5, seed 42.
	scores := map[string]UserScore{
		"a": {Username: "a", ValidEntries: 1, Score: 1},
		"b": {Username: "b", ValidEntries: 1, Score: 1},
		"c": {Username: "c", ValidEntries: 1, Score: 1},
	}

	res, err := Draw(scores, 5, 42)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b", "c"}, res.Winners)
	assert.Equal(t, 2, res.Shortfall)
}

func TestDraw_When_Empty(t *testing.T) {
	t.Parallel()

	_, err := Draw(nil, 10, 1)

	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDraw_When_InvalidK(t *testing.T) {
	t.Parallel()

	scores := map[string]UserScore{"a": {Username: "a", Score: 1, ValidEntries: 1}}

	_, err := Draw(scores, 0, 1)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}

func TestFlagHighVolume_Scenario(t *testing.T) {
	t.Parallel()

	scores := map[string]UserScore{
		"a": {Username: "a", ValidEntries: 162, TotalLikes: 1, Score: 163},
		"b": {Username: "b", ValidEntries: 10, TotalLikes: 1, Score: 11},
	}

	assert.Equal(t, []string{"a"}, FlagHighVolume(scores, 50))
}

func TestFlagHighVolume_SortsByCountDescending(t *testing.T) {
	t.Parallel()

	scores := map[string]UserScore{
		"low":  {Username: "low", ValidEntries: 60},
		"high": {Username: "high", ValidEntries: 200},
		"mid":  {Username: "mid", ValidEntries: 90},
		"ok":   {Username: "ok", ValidEntries: 50}, // at threshold, not over
	}

	assert.Equal(t, []string{"high", "mid", "low"}, FlagHighVolume(scores, 50))
}

func TestFlagHighVolume_When_NoneFlagged(t *testing.T) {
	t.Parallel()

	scores := map[string]UserScore{"a": {Username: "a", ValidEntries: 3}}

	assert.Empty(t, FlagHighVolume(scores, 50))
}
