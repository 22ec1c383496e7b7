package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankOrdersByScore(t *testing.T) {
	s := miniSession(t, "alice", "bob", "carol")

	// alice and carol score 3 in ones; bob's 6 in twos reaches the bonus
	// limit of 6, so his total is 6 plus the fixed bonus of 10.
	mustRoll(t, s, 1, 1, 1)
	mustRegister(t, s, rowOnes)
	mustRoll(t, s, 2, 2, 2)
	mustRegister(t, s, rowTwos)
	mustRoll(t, s, 1, 1, 1)
	mustRegister(t, s, rowOnes)

	got := Rank(s)
	require.Equal(t, "bob", got[0].Player)
	require.Equal(t, 16, got[0].Score)
	require.Equal(t, "alice", got[1].Player, "ties keep seating order")
	require.Equal(t, 3, got[1].Score)
	require.Equal(t, "carol", got[2].Player)
	require.Equal(t, 3, got[2].Score)
	require.Equal(t, 1, got[0].Seat)
}

func TestRankStableOnAllTies(t *testing.T) {
	s := miniSession(t, "p1", "p2", "p3", "p4")
	got := Rank(s)
	for i, r := range got {
		require.Equal(t, i, r.Seat)
		require.Equal(t, 0, r.Score)
	}
}
