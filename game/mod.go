package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrInvalidPiles  = errors.New("invalid piles")
)

// Piles holds the number of stones left in each pile, indexed by pile.
// Piles should be treated as immutable - operations on Piles always return a new copy
type Piles []int

// Action removes Amount stones from the pile at index Pile.
type Action struct {
	Pile   int
	Amount int
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Pile, a.Amount)
}

// Evaluate scores a pile configuration for the side to move. The sign convention is
// fixed: positive favours the maximizing side.
type Evaluate func(piles Piles, isMaximizing bool) int
