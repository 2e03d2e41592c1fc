package engine

import (
	"fmt"
	"io"
	"time"

	"nim/experiments/metrics"
	"nim/game"
	"nim/meta"
	"nim/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine runs a single game between two players seated at 0 and 1.
type Engine struct {
	nim      *game.Nim
	players  [2]player.Player
	starting int
	maxMoves int
	out      io.Writer
}

// WithOutput prints the piles and every move to w.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

func WithStartingPlayer(seat int) Option {
	return func(e *Engine) {
		if seat == 0 || seat == 1 {
			e.starting = seat
		}
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

func New(piles game.Piles, players [2]player.Player, options ...Option) (*Engine, error) {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}
	nim, err := game.NewNim(piles)
	if err != nil {
		return nil, err
	}
	if game.IsTerminal(nim.Piles) {
		return nil, errors.Wrap(game.ErrInvalidPiles, "cannot start a game without stones")
	}

	e := &Engine{
		nim:      nim,
		players:  players,
		maxMoves: meta.MAX_MOVES,
		out:      io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	e.nim.Player = e.starting
	return e, nil
}

// Run executes the game loop until a winner is found.
func (e *Engine) Run() (Result, error) {
	log.Info().Msgf("%s is starting on %v", e.players[e.starting].Name(), e.nim.Piles)

	startTime := time.Now()
	var moves []metrics.MoveMetric
	for step := 1; !e.nim.Over(); step++ {
		if step > e.maxMoves {
			return Result{}, errors.Wrapf(ErrMoveLimit, "stopped after %d moves", e.maxMoves)
		}

		for i, c := range e.nim.Piles {
			fmt.Fprintf(e.out, "Pile %d : %d\n", i, c)
		}

		seat := e.nim.Player
		current := e.players[seat]
		_, isHuman := current.(*player.Human)
		if !isHuman {
			fmt.Fprintf(e.out, "%s turn\n", current.Name())
		}

		action, metric, err := current.ChooseAction(e.nim.Piles.Clone())
		if err != nil {
			return Result{}, errors.Wrapf(err, "%s failed to choose an action", current.Name())
		}
		if err := e.nim.Move(action); err != nil {
			return Result{}, errors.Wrapf(err, "%s played %v", current.Name(), action)
		}
		if !isHuman {
			fmt.Fprintf(e.out, "%s chose to take %d from pile %d.\n", current.Name(), action.Amount, action.Pile)
		}

		moves = append(moves, metrics.MoveMetric{
			Step:         step,
			Player:       seat,
			Action:       action,
			SearchMetric: metric,
		})
		log.Debug().Int("step", step).Str("player", current.Name()).Stringer("action", action).
			Stringer("piles", e.nim.Piles).Msg("move played")
	}

	winner := e.players[e.nim.Winner]
	fmt.Fprintln(e.out, "GAME OVER")
	fmt.Fprintf(e.out, "Winner is %s\n", winner.Name())
	log.Info().Msgf("game over after %d moves, winner: %s", len(moves), winner.Name())

	endTime := time.Now()
	return Result{
		Winner:     e.nim.Winner,
		WinnerName: winner.Name(),
		Game: metrics.GameMetric{
			StartingPlayer: e.starting,
			Winner:         e.nim.Winner,
			WinnerName:     winner.Name(),
			StartTime:      startTime,
			EndTime:        endTime,
			Duration:       endTime.Sub(startTime),
			TotalMoves:     len(moves),
		},
		Moves: moves,
	}, nil
}
