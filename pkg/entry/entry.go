// Package entry models one comment record from a social-media export
// and handles reading, cleaning, and writing the CSV files that carry
// them between pipeline stages.
package entry

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Entry is one participant comment. Immutable once produced by the
// reader; downstream stages never modify it.
type Entry struct {
	Username   string
	ProfileURL string
	Comment    string   // may be empty (tag-only entries are legitimate)
	Mentions   []string // normalized, de-duplicated, sorted
	Likes      int      // parsed from free text, never negative
	Posted     string   // free-text "time elapsed" from the export, reporting only
}

// NormalizeUsername canonicalizes a username for grouping: NFC
// normalization, whitespace trim, leading-@ strip, case fold.
// "User" and "@user" aggregate as the same participant.
func NormalizeUsername(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "@")
	// cases.Caser carries internal state, so a fresh one per call.
	return cases.Fold().String(s)
}

var likesRe = regexp.MustCompile(`\d+`)

// ParseLikes extracts the like count from free text such as "1 like"
// or "15 likes". Absent or unparseable counts are 0.
func ParseLikes(s string) int {
	m := likesRe.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Digits too large for int; treat as unparseable.
		return 0
	}
	return n
}

var mentionRe = regexp.MustCompile(`@([A-Za-z0-9._]+)`)

// mentionSet collapses tagged usernames and in-comment @handles into a
// sorted, de-duplicated set of normalized usernames. The commenter's
// own handle does not count as a mention.
func mentionSet(self string, tagged []string, comment string) []string {
	seen := make(map[string]struct{})
	add := func(raw string) {
		u := NormalizeUsername(raw)
		if u == "" || u == self {
			return
		}
		seen[u] = struct{}{}
	}
	for _, t := range tagged {
		add(t)
	}
	for _, m := range mentionRe.FindAllStringSubmatch(comment, -1) {
		add(m[1])
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}
