package game

import "github.com/pkg/errors"

const NoWinner = -1

// Nim is the state of a single match: the piles, the player to move (0 or 1) and the winner.
// The player who takes the last stone loses.
type Nim struct {
	Piles  Piles
	Player int
	Winner int
}

// NewNim starts a match on a copy of the initial piles with player 0 to move.
func NewNim(initial Piles) (*Nim, error) {
	piles, err := NewPiles(initial...)
	if err != nil {
		return nil, err
	}
	return &Nim{Piles: piles, Player: 0, Winner: NoWinner}, nil
}

// OtherPlayer assumes player is either 0 or 1.
func OtherPlayer(player int) int {
	if player == 1 {
		return 0
	}
	return 1
}

// Over reports whether the match has a winner.
func (n *Nim) Over() bool {
	return n.Winner != NoWinner
}

// Move plays the action for the current player and passes the turn.
func (n *Nim) Move(action Action) error {
	if n.Over() {
		return errors.Wrap(ErrInvalidAction, "game is over - no moves allowed")
	}
	next, err := Apply(n.Piles, action)
	if err != nil {
		return err
	}
	n.Piles = next
	if IsTerminal(n.Piles) {
		n.Winner = OtherPlayer(n.Player)
	}
	n.Player = OtherPlayer(n.Player)
	return nil
}
