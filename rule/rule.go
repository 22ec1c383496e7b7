package rule

import (
	"errors"
	"fmt"

	"yatzy/formula"
)

// ErrInvalidDefinition reports a malformed rule definition. Rules failing
// validation are rejected at load time, before any session can use them.
var ErrInvalidDefinition = errors.New("invalid rule definition")

// Row is one scoring category of a rule: its formula, thresholds, flags, and
// — for sum/bonus rows — the set of row indices it aggregates. Rows are
// addressed positionally; DependsOn holds indices into Rule.Rows, resolved
// once from the textual references in the definition.
type Row struct {
	ID      string
	Title   string
	Expr    string
	Formula formula.Formula
	Limit   int
	Max     int

	Playable    bool
	Sum         bool
	Bonus       bool
	RollCounter bool
	Result      bool

	DependsOn []int
}

// Rule is an immutable game variant: an ordered list of rows plus the dice
// and roll counts. Row order is fixed; DependsOn indices reference it.
type Rule struct {
	Name     string
	Title    string
	Rows     []Row
	NumDice  int
	NumRolls int // 0 means unlimited rolls per turn

	// Computed at load time.
	TotalScore int
	ResultRow  int
}

// finalize parses row formulas, computes the total score and result row, and
// validates the definition. Called once by the loader and the catalog;
// DependsOn sets must already be resolved.
func (r *Rule) finalize() error {
	if len(r.Rows) == 0 {
		return fmt.Errorf("%w: rule %q has no rows", ErrInvalidDefinition, r.Name)
	}
	if r.NumDice < 1 {
		return fmt.Errorf("%w: rule %q needs at least one die", ErrInvalidDefinition, r.Name)
	}
	if r.NumRolls < 0 {
		return fmt.Errorf("%w: rule %q has negative roll count", ErrInvalidDefinition, r.Name)
	}

	r.TotalScore = 0
	r.ResultRow = -1
	seen := make(map[string]bool, len(r.Rows))

	for i := range r.Rows {
		row := &r.Rows[i]
		if row.ID == "" {
			return fmt.Errorf("%w: rule %q row %d has no id", ErrInvalidDefinition, r.Name, i)
		}
		if seen[row.ID] {
			return fmt.Errorf("%w: rule %q has duplicate row id %q", ErrInvalidDefinition, r.Name, row.ID)
		}
		seen[row.ID] = true

		f, err := formula.Parse(row.Expr)
		if err != nil {
			return fmt.Errorf("%w: rule %q row %q formula: %v", ErrInvalidDefinition, r.Name, row.ID, err)
		}
		row.Formula = f

		if row.Playable && row.Formula.Empty() {
			return fmt.Errorf("%w: rule %q playable row %q has no formula", ErrInvalidDefinition, r.Name, row.ID)
		}
		if (row.Sum || row.Bonus) && len(row.DependsOn) == 0 {
			return fmt.Errorf("%w: rule %q row %q aggregates nothing", ErrInvalidDefinition, r.Name, row.ID)
		}
		for _, dep := range row.DependsOn {
			if dep < 0 || dep >= len(r.Rows) {
				return fmt.Errorf("%w: rule %q row %q depends on row %d, out of range", ErrInvalidDefinition, r.Name, row.ID, dep)
			}
		}
		if row.Result {
			if r.ResultRow >= 0 {
				return fmt.Errorf("%w: rule %q has more than one result row", ErrInvalidDefinition, r.Name)
			}
			if !row.Sum {
				return fmt.Errorf("%w: rule %q result row %q must be a sum row", ErrInvalidDefinition, r.Name, row.ID)
			}
			r.ResultRow = i
		}
		if row.Playable || row.Bonus {
			r.TotalScore += row.Max
		}
	}

	if r.ResultRow < 0 {
		return fmt.Errorf("%w: rule %q has no result row", ErrInvalidDefinition, r.Name)
	}
	return nil
}

// PlayableRows returns the indices of rows a player registers directly.
func (r *Rule) PlayableRows() []int {
	var rows []int
	for i := range r.Rows {
		if r.Rows[i].Playable {
			rows = append(rows, i)
		}
	}
	return rows
}

// RowIndex returns the position of the row with the given id, or -1.
func (r *Rule) RowIndex(id string) int {
	for i := range r.Rows {
		if r.Rows[i].ID == id {
			return i
		}
	}
	return -1
}
