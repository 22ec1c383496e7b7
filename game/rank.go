package game

import "golang.org/x/exp/slices"

// Result is one player's final standing.
type Result struct {
	Seat   int
	Player string
	Score  int
}

// Rank orders players descending by their result-row value. The sort is
// stable: ties keep the original seating order, with no further tie-break.
func Rank(s *Session) []Result {
	results := make([]Result, len(s.columns))
	for i, col := range s.columns {
		results[i] = Result{
			Seat:   i,
			Player: col.Player,
			Score:  s.Score(i),
		}
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		return b.Score - a.Score
	})
	return results
}
