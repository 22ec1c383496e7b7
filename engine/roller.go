package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// Roller supplies settled dice values. The physical roll (animation, real
// dice, a remote client) lives behind this seam; the engine only ever sees
// the final faces.
type Roller interface {
	Roll(n int) []int
}

type RandomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller seeds a fair six-sided roller. Seed 0 seeds from the
// clock.
func NewRandomRoller(seed uint64) *RandomRoller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomRoller) Roll(n int) []int {
	dice := make([]int, n)
	for i := range dice {
		dice[i] = r.rng.Intn(6) + 1
	}
	return dice
}
