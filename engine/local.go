package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"yatzy/game"
)

// LocalEngine drives a complete game in-process: it rolls for the active
// player, lets that player's strategy spend the remaining rolls, registers
// the chosen row, and loops until the session reports game over.
type LocalEngine struct {
	Session    *game.Session
	Roller     Roller
	Strategies []Strategy
}

func LocalGame(session *game.Session, roller Roller, strategies []Strategy) (*LocalEngine, error) {
	if session == nil {
		return nil, fmt.Errorf("no session")
	}
	if len(strategies) != len(session.Players()) {
		return nil, fmt.Errorf("%d strategies for %d players", len(strategies), len(session.Players()))
	}
	return &LocalEngine{
		Session:    session,
		Roller:     roller,
		Strategies: strategies,
	}, nil
}

// Run executes the entire game loop until the last player fills their card.
func (e *LocalEngine) Run() ([]game.Result, error) {
	s := e.Session
	numDice := s.Rule().NumDice
	players := s.Players()

	log.Info().Msgf("player %s is starting", players[s.ActivePlayer()])

	for turn := 1; turn <= MaxTurns; turn++ {
		player := s.ActivePlayer()
		strategy := e.Strategies[player]

		for {
			dice := e.Roller.Roll(numDice)
			if _, err := s.Roll(dice); err != nil {
				return nil, err
			}
			log.Debug().Msgf("player %s rolled %v (roll %d)", players[player], dice, s.RollsThisTurn())
			if !s.Rollable() || !strategy.KeepRolling(s) {
				break
			}
		}

		row := strategy.ChooseRow(s)
		out, err := s.Register(row)
		if err != nil {
			return nil, err
		}
		cells, err := s.Cells(player)
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("player %s registered %s for %d points",
			players[player], s.Rule().Rows[row].ID, cells[row].Value)

		if out.Kind == game.GameOver {
			log.Info().Msgf("game over! winner: %s with %d points", out.Final[0].Player, out.Final[0].Score)
			return out.Final, nil
		}
	}
	return nil, fmt.Errorf("no game over after %d turns", MaxTurns)
}
