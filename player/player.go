package player

import (
	"nim/experiments/metrics"
	"nim/game"
	"nim/searcher"

	"golang.org/x/exp/rand"
)

// Player picks the next action for the side to move.
type Player interface {
	Name() string
	ChooseAction(piles game.Piles) (game.Action, metrics.SearchMetric, error)
}

// AI plays the action found by a searcher.
type AI struct {
	name     string
	searcher searcher.Searcher
}

func NewAI(name string, s searcher.Searcher) *AI {
	if s == nil {
		panic("AI player needs a searcher")
	}
	return &AI{name: name, searcher: s}
}

func (a *AI) Name() string {
	return a.name
}

func (a *AI) ChooseAction(piles game.Piles) (game.Action, metrics.SearchMetric, error) {
	return a.searcher.BestAction(piles)
}

// Random plays a uniformly random legal action. It is the baseline for experiments.
type Random struct {
	name string
	rand *rand.Rand
}

func NewRandom(name string, seed uint64) *Random {
	return &Random{name: name, rand: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return r.name
}

func (r *Random) ChooseAction(piles game.Piles) (game.Action, metrics.SearchMetric, error) {
	actions := game.AvailableActions(piles)
	if len(actions) == 0 {
		return game.Action{}, metrics.SearchMetric{}, searcher.ErrNoActions
	}
	return actions[r.rand.Intn(len(actions))], metrics.SearchMetric{}, nil
}
