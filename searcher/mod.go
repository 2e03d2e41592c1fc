package searcher

import (
	"math"

	"nim/experiments/metrics"
	"nim/game"

	"github.com/pkg/errors"
)

const DefaultDepth = 10

// Search window bounds
const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

var (
	ErrNoActions    = errors.New("no actions available")
	ErrInvalidDepth = errors.New("search depth must be positive")
)

type Searcher interface {
	// BestAction returns the action judged best for the side to move, and the metrics of the
	// search (if collected)
	BestAction(piles game.Piles) (game.Action, metrics.SearchMetric, error)
}
