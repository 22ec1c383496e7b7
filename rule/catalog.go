package rule

import "fmt"

// Built-in rule definitions. These go through the same resolution and
// validation path as YAML files, so the catalog cannot drift from what the
// loader accepts.

var upperRows = []string{"ones", "twos", "threes", "fours", "fives", "sixes"}

var yatzyDef = ruleFile{
	Name:  "yatzy",
	Title: "Yatzy",
	Dice:  5,
	Rolls: 3,
	Rows: []rowFile{
		{ID: "ones", Title: "Ones", Formula: "SUM 1", Max: 5, Playable: true},
		{ID: "twos", Title: "Twos", Formula: "SUM 2", Max: 10, Playable: true},
		{ID: "threes", Title: "Threes", Formula: "SUM 3", Max: 15, Playable: true},
		{ID: "fours", Title: "Fours", Formula: "SUM 4", Max: 20, Playable: true},
		{ID: "fives", Title: "Fives", Formula: "SUM 5", Max: 25, Playable: true},
		{ID: "sixes", Title: "Sixes", Formula: "SUM 6", Max: 30, Playable: true},
		{ID: "upper", Title: "Sum", Sum: true, Depends: upperRows},
		{ID: "bonus", Title: "Bonus", Limit: 63, Max: 50, Bonus: true, Depends: upperRows},
		{ID: "pair", Title: "One Pair", Formula: "PAIR 1", Max: 12, Playable: true},
		{ID: "twopairs", Title: "Two Pairs", Formula: "PAIR 2", Max: 22, Playable: true},
		{ID: "three", Title: "Three of a Kind", Formula: "DUPLICATES 3", Max: 18, Playable: true},
		{ID: "four", Title: "Four of a Kind", Formula: "DUPLICATES 4", Max: 24, Playable: true},
		{ID: "smallstraight", Title: "Small Straight", Formula: "STRAIGHT 5", Limit: 15, Max: 15, Playable: true},
		{ID: "largestraight", Title: "Large Straight", Formula: "STRAIGHT 5", Limit: 20, Max: 20, Playable: true},
		{ID: "house", Title: "Full House", Formula: "HOUSE 3 2", Max: 28, Playable: true},
		{ID: "chance", Title: "Chance", Formula: "SUM", Max: 30, Playable: true},
		{ID: "yatzy", Title: "Yatzy", Formula: "DUPLICATES 5", Limit: 50, Max: 50, Playable: true},
		{ID: "rolls", Title: "Rolls", RollCounter: true},
		{ID: "total", Title: "Total", Sum: true, Result: true, Depends: []string{
			"ones", "twos", "threes", "fours", "fives", "sixes", "bonus",
			"pair", "twopairs", "three", "four", "smallstraight",
			"largestraight", "house", "chance", "yatzy",
		}},
	},
}

var maxiYatzyDef = ruleFile{
	Name:  "maxiyatzy",
	Title: "Maxi Yatzy",
	Dice:  6,
	Rolls: 3,
	Rows: []rowFile{
		{ID: "ones", Title: "Ones", Formula: "SUM 1", Max: 6, Playable: true},
		{ID: "twos", Title: "Twos", Formula: "SUM 2", Max: 12, Playable: true},
		{ID: "threes", Title: "Threes", Formula: "SUM 3", Max: 18, Playable: true},
		{ID: "fours", Title: "Fours", Formula: "SUM 4", Max: 24, Playable: true},
		{ID: "fives", Title: "Fives", Formula: "SUM 5", Max: 30, Playable: true},
		{ID: "sixes", Title: "Sixes", Formula: "SUM 6", Max: 36, Playable: true},
		{ID: "upper", Title: "Sum", Sum: true, Depends: upperRows},
		{ID: "bonus", Title: "Bonus", Limit: 84, Max: 100, Bonus: true, Depends: upperRows},
		{ID: "pair", Title: "One Pair", Formula: "PAIR 1", Max: 12, Playable: true},
		{ID: "twopairs", Title: "Two Pairs", Formula: "PAIR 2", Max: 22, Playable: true},
		{ID: "threepairs", Title: "Three Pairs", Formula: "PAIR 3", Max: 30, Playable: true},
		{ID: "three", Title: "Three of a Kind", Formula: "DUPLICATES 3", Max: 18, Playable: true},
		{ID: "four", Title: "Four of a Kind", Formula: "DUPLICATES 4", Max: 24, Playable: true},
		{ID: "five", Title: "Five of a Kind", Formula: "DUPLICATES 5", Max: 30, Playable: true},
		{ID: "smallstraight", Title: "Small Straight", Formula: "STRAIGHT 5", Limit: 15, Max: 15, Playable: true},
		{ID: "largestraight", Title: "Large Straight", Formula: "STRAIGHT 5", Limit: 20, Max: 20, Playable: true},
		{ID: "fullstraight", Title: "Full Straight", Formula: "STRAIGHT 6", Limit: 21, Max: 21, Playable: true},
		{ID: "house", Title: "Full House", Formula: "HOUSE 3 2", Max: 28, Playable: true},
		{ID: "villa", Title: "Villa", Formula: "HOUSE 3 3", Max: 33, Playable: true},
		{ID: "tower", Title: "Tower", Formula: "HOUSE 4 2", Max: 34, Playable: true},
		{ID: "chance", Title: "Chance", Formula: "SUM", Max: 36, Playable: true},
		{ID: "maxiyatzy", Title: "Maxi Yatzy", Formula: "DUPLICATES 6", Limit: 100, Max: 100, Playable: true},
		{ID: "rolls", Title: "Rolls", RollCounter: true},
		{ID: "total", Title: "Total", Sum: true, Result: true, Depends: []string{
			"ones", "twos", "threes", "fours", "fives", "sixes", "bonus",
			"pair", "twopairs", "threepairs", "three", "four", "five",
			"smallstraight", "largestraight", "fullstraight",
			"house", "villa", "tower", "chance", "maxiyatzy",
		}},
	},
}

var catalog = []ruleFile{yatzyDef, maxiYatzyDef}

// Yatzy returns the standard Scandinavian five-dice card.
func Yatzy() *Rule {
	return mustBuild(yatzyDef)
}

// MaxiYatzy returns the six-dice card. Its five-die straights exercise the
// permissive superset straight rule.
func MaxiYatzy() *Rule {
	return mustBuild(maxiYatzyDef)
}

// Variants lists the built-in rule names in catalog order.
func Variants() []string {
	names := make([]string, len(catalog))
	for i, def := range catalog {
		names[i] = def.Name
	}
	return names
}

// Variant builds the named built-in rule.
func Variant(name string) (*Rule, error) {
	for _, def := range catalog {
		if def.Name == name {
			return mustBuild(def), nil
		}
	}
	return nil, fmt.Errorf("%w: no built-in rule %q", ErrInvalidDefinition, name)
}

func mustBuild(def ruleFile) *Rule {
	rule, err := def.build()
	if err != nil {
		panic(err)
	}
	return rule
}
