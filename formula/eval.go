package formula

import "fmt"

// Eval computes the score of a dice multiset against this formula. Face
// values are 1..6. limit and max come from the rule row the formula belongs
// to; their meaning depends on the command (fixed-score duplicates, straight
// thresholds). An unmet condition scores 0; only an unrecognized command is
// an error.
func (f Formula) Eval(dice []int, limit, max int) (int, error) {
	counts := faceCounts(dice)

	switch f.Op {
	case OpSum:
		if len(f.Args) == 0 {
			total := 0
			for _, d := range dice {
				total += d
			}
			return total, nil
		}
		face := f.Args[0]
		if face < 1 || face > 6 {
			return 0, nil
		}
		return face * counts[face], nil

	case OpDuplicates:
		k := arg(f.Args, 0)
		for face := 6; face >= 1; face-- {
			if counts[face] >= k {
				if max == limit {
					// Fixed-score row, e.g. yatzy itself.
					return max, nil
				}
				return k * face, nil
			}
		}
		return 0, nil

	case OpPair:
		k := arg(f.Args, 0)
		score := 0
		found := 0
		for face := 6; face >= 1 && found < k; face-- {
			if counts[face] >= 2 {
				score += 2 * face
				found++
			}
		}
		// All-or-nothing: fewer disjoint pairs than asked scores zero.
		if found < k {
			return 0, nil
		}
		return score, nil

	case OpStraight:
		size := arg(f.Args, 0)
		distinct, sum := 0, 0
		for face := 1; face <= 6; face++ {
			if counts[face] > 0 {
				distinct++
				sum += face
			}
		}
		if distinct == size && sum == limit {
			return max, nil
		}
		if distinct > size && sum >= limit {
			return max, nil
		}
		return 0, nil

	case OpHouse:
		major, minor := arg(f.Args, 0), arg(f.Args, 1)
		majorFace := highestWithCount(counts, major, 0)
		if majorFace == 0 {
			return 0, nil
		}
		minorFace := highestWithCount(counts, minor, majorFace)
		if minorFace == 0 {
			return 0, nil
		}
		return major*majorFace + minor*minorFace, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknown, string(f.Op))
	}
}

// faceCounts tallies dice by face, indexed 1..6. Out-of-range values are
// ignored rather than crashing on bad caller input.
func faceCounts(dice []int) [7]int {
	var counts [7]int
	for _, d := range dice {
		if d >= 1 && d <= 6 {
			counts[d]++
		}
	}
	return counts
}

// highestWithCount returns the highest face with at least want dice, skipping
// exclude. Returns 0 when no face qualifies.
func highestWithCount(counts [7]int, want, exclude int) int {
	if want < 1 {
		want = 1
	}
	for face := 6; face >= 1; face-- {
		if face != exclude && counts[face] >= want {
			return face
		}
	}
	return 0
}

func arg(args []int, i int) int {
	if i >= len(args) {
		return 0
	}
	return args[i]
}
