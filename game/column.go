package game

// CellState is the runtime state of one scoring row for one player. Value is
// meaningful only once Registered; Preview is the candidate score from the
// latest roll and is meaningless once the cell is registered.
type CellState struct {
	Registered bool
	Value      int
	Preview    int
}

// Column is one player's score column: cells parallel to the rule's rows,
// the rolls used in the current turn, and the stack of registered row
// indices. Only the most recent registration can ever be reversed.
type Column struct {
	Player    string
	Cells     []CellState
	RollsUsed int

	undo []int
}

func newColumn(player string, rows int) *Column {
	return &Column{
		Player: player,
		Cells:  make([]CellState, rows),
	}
}

func (c *Column) pushUndo(row int) {
	c.undo = append(c.undo, row)
}

// popUndo removes and returns the most recently registered row index.
// Returns -1 when nothing has been registered.
func (c *Column) popUndo() int {
	if len(c.undo) == 0 {
		return -1
	}
	row := c.undo[len(c.undo)-1]
	c.undo = c.undo[:len(c.undo)-1]
	return row
}

// snapshot returns a copy of the column's cells for the presentation layer.
func (c *Column) snapshot() []CellState {
	cells := make([]CellState, len(c.Cells))
	copy(cells, c.Cells)
	return cells
}
