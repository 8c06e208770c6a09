package keyword

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "this": {}, "with": {},
	"are": {}, "was": {}, "not": {}, "you": {}, "have": {}, "your": {},
}

type RankOptions struct {
	TopN             int
	SeedBonus        int // added to a seed already counted
	SeedAbsentWeight int // count given to a seed with no organic hits
}

func DefaultRankOptions() RankOptions {
	return RankOptions{
		TopN:             100,
		SeedBonus:        5,
		SeedAbsentWeight: 1,
	}
}

// IsCandidate reports whether w is long enough and purely alphabetic to be
// counted.
func IsCandidate(w string) bool {
	if utf8.RuneCountInString(w) <= 3 {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Rank counts candidate tokens that are not stop words, reweights each
// distinct candidate seed once, and returns the TopN entries by descending
// count. Equal counts keep first-seen order: organic tokens by first
// appearance, then seeds not seen organically in seed order.
func Rank(tokens, seeds []string, opts RankOptions) *entity.KeywordCounts {
	counts := make(map[string]int)
	var order []string

	for _, w := range tokens {
		if !IsCandidate(w) || IsStopWord(w) {
			continue
		}
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	boosted := make(map[string]struct{})
	for _, w := range seeds {
		if !IsCandidate(w) {
			continue
		}
		if _, ok := boosted[w]; ok {
			continue
		}
		boosted[w] = struct{}{}

		if _, ok := counts[w]; ok {
			counts[w] += opts.SeedBonus
		} else {
			counts[w] = opts.SeedAbsentWeight
			order = append(order, w)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if opts.TopN >= 0 && len(order) > opts.TopN {
		order = order[:opts.TopN]
	}

	out := entity.NewKeywordCounts()
	for _, w := range order {
		out.Set(w, counts[w])
	}
	return out
}
