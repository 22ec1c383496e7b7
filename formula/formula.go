package formula

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrUnknown reports a formula command outside the recognized vocabulary.
// This is rule-data corruption, not a playable outcome, so evaluation fails
// fast instead of scoring zero.
var ErrUnknown = errors.New("unknown formula command")

// Op is the scoring command of a formula. The vocabulary is closed; anything
// else fails evaluation with ErrUnknown.
type Op string

const (
	OpSum        Op = "SUM"
	OpDuplicates Op = "DUPLICATES"
	OpPair       Op = "PAIR"
	OpStraight   Op = "STRAIGHT"
	OpHouse      Op = "HOUSE"
)

// Formula is a parsed scoring expression: a command plus integer arguments.
// The zero Formula marks a row with no formula (sum and bonus rows).
type Formula struct {
	Op   Op
	Args []int
}

func (f Formula) Empty() bool {
	return f.Op == ""
}

func (f Formula) String() string {
	parts := []string{string(f.Op)}
	for _, a := range f.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, " ")
}

// expr is the participle AST for a formula expression.
type expr struct {
	Command string `parser:"@Ident"`
	Args    []int  `parser:"@Int*"`
}

var def = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_]\w*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[expr](
	participle.Lexer(def),
	participle.Elide("Whitespace"),
)

// Parse turns a formula expression like "PAIR 2" or "HOUSE 3 2" into a
// Formula. An empty or blank expression yields the zero Formula. The command
// is not checked against the vocabulary here; Eval owns that.
func Parse(text string) (Formula, error) {
	if strings.TrimSpace(text) == "" {
		return Formula{}, nil
	}
	e, err := parser.ParseString("", text)
	if err != nil {
		return Formula{}, err
	}
	return Formula{Op: Op(strings.ToUpper(e.Command)), Args: e.Args}, nil
}
