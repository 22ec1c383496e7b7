package engine

import "yatzy/game"

const MaxTurns = 10000

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() ([]game.Result, error)
}
