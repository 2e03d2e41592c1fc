package engine

import (
	"nim/experiments/metrics"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var ErrMoveLimit = errors.New("move limit reached")

// Result is the outcome of a finished game.
type Result struct {
	Winner     int // Seat index
	WinnerName string
	Game       metrics.GameMetric
	Moves      []metrics.MoveMetric
}

// RandomSeat picks which seat moves first.
func RandomSeat(r *rand.Rand) int {
	if r.Float64() < 0.5 {
		return 0
	}
	return 1
}
