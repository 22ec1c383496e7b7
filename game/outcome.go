package game

// Kind tags the result of an engine mutation. Callers pattern-match on it
// instead of registering observers.
type Kind int

const (
	// Continued: the same player's turn goes on (after a roll or an undo).
	Continued Kind = iota
	// Registered: a score was committed and the turn passed on.
	Registered
	// GameOver: the last player has filled their card; Final carries the
	// ranking.
	GameOver
)

// Outcome is the value returned by Roll, Register, and Undo.
type Outcome struct {
	Kind   Kind
	Player int      // active player index after the call
	Final  []Result // set only when Kind == GameOver
}
