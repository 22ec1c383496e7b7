package engine

import "yatzy/game"

// Strategy decides how the active player spends rolls and which row to
// register. It fills the seat a human takes through the UI.
type Strategy interface {
	// KeepRolling is consulted after each roll while rolls remain.
	KeepRolling(s *game.Session) bool
	// ChooseRow picks the row to register. Must return a playable,
	// unregistered row for the active player.
	ChooseRow(s *game.Session) int
}

// Greedy uses every roll, then registers the row with the highest preview.
// Ties go to the earliest row; with all previews at zero that sacrifices the
// topmost open row.
type Greedy struct{}

func (Greedy) KeepRolling(s *game.Session) bool {
	return true
}

func (Greedy) ChooseRow(s *game.Session) int {
	cells, err := s.Cells(s.ActivePlayer())
	if err != nil {
		return -1
	}
	best, bestScore := -1, -1
	for _, i := range s.Rule().PlayableRows() {
		if cells[i].Registered {
			continue
		}
		if cells[i].Preview > bestScore {
			best, bestScore = i, cells[i].Preview
		}
	}
	return best
}

// FirstFree registers the first open row after a single roll. Useful as the
// dumbest possible baseline and for deterministic tests.
type FirstFree struct{}

func (FirstFree) KeepRolling(s *game.Session) bool {
	return false
}

func (FirstFree) ChooseRow(s *game.Session) int {
	cells, err := s.Cells(s.ActivePlayer())
	if err != nil {
		return -1
	}
	for _, i := range s.Rule().PlayableRows() {
		if !cells[i].Registered {
			return i
		}
	}
	return -1
}
