package game

import (
	"errors"
	"fmt"

	"yatzy/rule"
)

// ErrIllegalState reports an operation invoked outside its state-machine
// window. The call is a no-op: session state is never corrupted by a
// rejected roll, registration, or undo.
var ErrIllegalState = errors.New("illegal state")

// registration remembers the most recent commit while it is still
// reversible. The window closes as soon as anyone rolls again.
type registration struct {
	player    int
	row       int
	rollsUsed int
}

// Session is one active game: a shared read-only rule, one score column per
// seated player, and the turn/roll state machine. A Session is not safe for
// concurrent use; callers serialize access.
type Session struct {
	rule    *rule.Rule
	columns []*Column

	active        int
	rollsThisTurn int
	rollable      bool
	registerable  bool
	over          bool

	lastReg *registration
}

// NewSession seats the given players, in turn order, on a fresh card.
func NewSession(r *rule.Rule, players []string) (*Session, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no rule", ErrIllegalState)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrIllegalState)
	}
	s := &Session{
		rule:    r,
		columns: make([]*Column, len(players)),
	}
	for i, name := range players {
		s.columns[i] = newColumn(name, len(r.Rows))
	}
	s.startTurn(0)
	return s, nil
}

func (s *Session) startTurn(player int) {
	s.active = player
	s.rollsThisTurn = 0
	s.columns[player].RollsUsed = 0
	s.rollable = true
	s.registerable = false
}

// Roll consumes one roll for the active player and refreshes the previews of
// every playable, unregistered row. dice carries the settled face values,
// one per die. Rolling outside the window or past the roll limit is rejected
// with ErrIllegalState.
func (s *Session) Roll(dice []int) (Outcome, error) {
	if s.over {
		return Outcome{}, fmt.Errorf("%w: game is over", ErrIllegalState)
	}
	if !s.rollable {
		return Outcome{}, fmt.Errorf("%w: no rolls left this turn", ErrIllegalState)
	}
	if len(dice) != s.rule.NumDice {
		return Outcome{}, fmt.Errorf("%w: got %d dice, rule wants %d", ErrIllegalState, len(dice), s.rule.NumDice)
	}
	for _, d := range dice {
		if d < 1 || d > 6 {
			return Outcome{}, fmt.Errorf("%w: die value %d out of range", ErrIllegalState, d)
		}
	}

	col := s.columns[s.active]

	// Evaluate everything before touching state so an unknown formula
	// cannot leave a half-updated column behind.
	previews := make(map[int]int)
	for i := range s.rule.Rows {
		row := &s.rule.Rows[i]
		if !row.Playable || col.Cells[i].Registered || row.Formula.Empty() {
			continue
		}
		score, err := row.Formula.Eval(dice, row.Limit, row.Max)
		if err != nil {
			return Outcome{}, fmt.Errorf("row %q: %w", row.ID, err)
		}
		previews[i] = score
	}

	for i, score := range previews {
		col.Cells[i].Preview = score
	}
	for i := range s.rule.Rows {
		if s.rule.Rows[i].RollCounter {
			col.Cells[i].Value++
		}
	}

	s.rollsThisTurn++
	col.RollsUsed = s.rollsThisTurn
	s.registerable = true
	// Anyone rolling closes the previous registration's undo window.
	s.lastReg = nil
	if s.rule.NumRolls > 0 && s.rollsThisTurn >= s.rule.NumRolls {
		s.rollable = false
	}
	return Outcome{Kind: Continued, Player: s.active}, nil
}

// Register commits the preview of the given row as the active player's
// permanent score, recomputes dependent sums and bonuses, and either passes
// the turn on or ends the game.
func (s *Session) Register(rowIndex int) (Outcome, error) {
	if s.over {
		return Outcome{}, fmt.Errorf("%w: game is over", ErrIllegalState)
	}
	if !s.registerable {
		return Outcome{}, fmt.Errorf("%w: nothing to register", ErrIllegalState)
	}
	if rowIndex < 0 || rowIndex >= len(s.rule.Rows) {
		return Outcome{}, fmt.Errorf("%w: row %d out of range", ErrIllegalState, rowIndex)
	}
	row := &s.rule.Rows[rowIndex]
	if !row.Playable {
		return Outcome{}, fmt.Errorf("%w: row %q is not playable", ErrIllegalState, row.ID)
	}
	col := s.columns[s.active]
	cell := &col.Cells[rowIndex]
	if cell.Registered {
		return Outcome{}, fmt.Errorf("%w: row %q already registered", ErrIllegalState, row.ID)
	}

	cell.Value = cell.Preview
	cell.Registered = true
	col.pushUndo(rowIndex)
	s.lastReg = &registration{player: s.active, row: rowIndex, rollsUsed: s.rollsThisTurn}
	s.recompute(col)
	s.rollable = false
	s.registerable = false

	if s.active == len(s.columns)-1 && s.cardComplete(col) {
		s.over = true
		return Outcome{Kind: GameOver, Player: s.active, Final: Rank(s)}, nil
	}

	next := (s.active + 1) % len(s.columns)
	s.startTurn(next)
	return Outcome{Kind: Registered, Player: next}, nil
}

// Undo reverses the most recent registration. It is valid only until the
// next roll: once another player has rolled, the commitment stands. The
// turn returns to the registering player with one roll handed back.
func (s *Session) Undo() (Outcome, error) {
	if s.lastReg == nil {
		return Outcome{}, fmt.Errorf("%w: nothing to undo", ErrIllegalState)
	}
	reg := s.lastReg
	col := s.columns[reg.player]
	popped := col.popUndo()
	if popped != reg.row {
		// The stack and the window can only disagree through a bug here.
		return Outcome{}, fmt.Errorf("%w: undo stack lost row %d", ErrIllegalState, reg.row)
	}

	cell := &col.Cells[reg.row]
	cell.Registered = false
	cell.Value = 0
	s.recompute(col)
	for i := range s.rule.Rows {
		if s.rule.Rows[i].RollCounter && col.Cells[i].Value > 0 {
			col.Cells[i].Value--
		}
	}

	s.over = false
	s.active = reg.player
	s.rollsThisTurn = reg.rollsUsed - 1
	col.RollsUsed = s.rollsThisTurn
	s.rollable = true
	s.registerable = false
	s.lastReg = nil
	return Outcome{Kind: Continued, Player: s.active}, nil
}

// CanUndo reports whether an undo affordance should be offered: the most
// recent registration is still inside its turn-boundary window.
func (s *Session) CanUndo() bool {
	return s.lastReg != nil
}

// recompute re-derives every sum and bonus row of the column. Row counts are
// small, so recomputing unconditionally is cheaper than tracking which
// dependency changed and never misses a transitive update.
func (s *Session) recompute(col *Column) {
	for i := range s.rule.Rows {
		row := &s.rule.Rows[i]
		switch {
		case row.Bonus:
			if col.Cells[i].Registered {
				// An awarded bonus stays awarded.
				continue
			}
			if s.depSum(col, row.DependsOn) >= row.Limit {
				col.Cells[i].Value = row.Max
				col.Cells[i].Registered = true
			}
		case row.Sum:
			col.Cells[i].Value = s.depSum(col, row.DependsOn)
		}
	}
}

// depSum totals the dependency rows, counting 0 for anything not yet
// registered. Sum rows always contribute their derived value.
func (s *Session) depSum(col *Column, deps []int) int {
	total := 0
	for _, d := range deps {
		if s.rule.Rows[d].Sum || col.Cells[d].Registered {
			total += col.Cells[d].Value
		}
	}
	return total
}

// cardComplete reports whether every playable row of the column is
// registered.
func (s *Session) cardComplete(col *Column) bool {
	for i := range s.rule.Rows {
		if s.rule.Rows[i].Playable && !col.Cells[i].Registered {
			return false
		}
	}
	return true
}

// Rule returns the shared, read-only rule this session plays.
func (s *Session) Rule() *rule.Rule {
	return s.rule
}

// Players returns the seated player names in turn order.
func (s *Session) Players() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.Player
	}
	return names
}

func (s *Session) ActivePlayer() int {
	return s.active
}

func (s *Session) RollsThisTurn() int {
	return s.rollsThisTurn
}

// RollsUsed returns how many rolls the given player has spent in their most
// recent turn. Unlike RollsThisTurn it keeps its value after the turn passes
// on, so a scorecard can keep showing it.
func (s *Session) RollsUsed(player int) (int, error) {
	if player < 0 || player >= len(s.columns) {
		return 0, fmt.Errorf("%w: player %d out of range", ErrIllegalState, player)
	}
	return s.columns[player].RollsUsed, nil
}

// Rollable reports whether the active player may roll.
func (s *Session) Rollable() bool {
	return !s.over && s.rollable
}

// Registerable reports whether a registration is currently accepted: true
// only directly after a roll and before a registration.
func (s *Session) Registerable() bool {
	return !s.over && s.registerable
}

func (s *Session) Over() bool {
	return s.over
}

// Cells returns a copy of the given player's column for display.
func (s *Session) Cells(player int) ([]CellState, error) {
	if player < 0 || player >= len(s.columns) {
		return nil, fmt.Errorf("%w: player %d out of range", ErrIllegalState, player)
	}
	return s.columns[player].snapshot(), nil
}

// Score returns the player's current published total: the value of the
// rule's result row.
func (s *Session) Score(player int) int {
	return s.columns[player].Cells[s.rule.ResultRow].Value
}
