// Package search ranks cached tracks against a free-text query.
package search

import (
	"tracknote/internal/model"

	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Track          *model.Track
	MatchedIndexes []int
	Score          int
}

// trackSummaries implements fuzzy.Source over track display strings.
type trackSummaries []*model.Track

func (ts trackSummaries) String(i int) string {
	return ts[i].Summary()
}

func (ts trackSummaries) Len() int {
	return len(ts)
}

// FuzzyRank matches tracks against the query on "Title by Artist" strings.
// Returns results sorted by match score (best first).
func FuzzyRank(tracks []model.Track, query string) []Result {
	if query == "" {
		return nil
	}

	summaries := make(trackSummaries, len(tracks))
	for i := range tracks {
		summaries[i] = &tracks[i]
	}

	matches := fuzzy.FindFrom(query, summaries)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Track:          summaries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
