package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NewPiles validates the counts and returns them as a fresh configuration.
func NewPiles(counts ...int) (Piles, error) {
	for i, c := range counts {
		if c < 0 {
			return nil, errors.Wrapf(ErrInvalidPiles, "pile %d has negative count %d", i, c)
		}
	}
	return Piles(counts).Clone(), nil
}

func (p Piles) Clone() Piles {
	clone := make(Piles, len(p))
	copy(clone, p)
	return clone
}

// Total is the number of stones left across all piles.
func (p Piles) Total() int {
	total := 0
	for _, c := range p {
		total += c
	}
	return total
}

// NimSum is the bitwise XOR of every pile count.
func (p Piles) NimSum() int {
	sum := 0
	for _, c := range p {
		sum ^= c
	}
	return sum
}

func (p Piles) String() string {
	counts := make([]string, len(p))
	for i, c := range p {
		counts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(counts, " ") + "]"
}

// Validate reports the first negative pile, if any.
func (p Piles) Validate() error {
	_, err := NewPiles(p...)
	return err
}

// IsTerminal reports whether every pile is empty.
func IsTerminal(piles Piles) bool {
	for _, c := range piles {
		if c != 0 {
			return false
		}
	}
	return true
}

// AvailableActions enumerates every legal action, ordered by ascending pile index and then
// ascending amount. The result is empty iff the configuration is terminal.
func AvailableActions(piles Piles) []Action {
	actions := make([]Action, 0, piles.Total())
	for i, c := range piles {
		for j := 1; j <= c; j++ {
			actions = append(actions, Action{Pile: i, Amount: j})
		}
	}
	return actions
}

// IsLegal reports whether the action can be applied to the piles.
func IsLegal(piles Piles, action Action) bool {
	return action.Pile >= 0 && action.Pile < len(piles) &&
		action.Amount >= 1 && action.Amount <= piles[action.Pile]
}

// Apply returns a new configuration with the action's stones removed. The input is never modified.
func Apply(piles Piles, action Action) (Piles, error) {
	if action.Pile < 0 || action.Pile >= len(piles) {
		return nil, errors.Wrapf(ErrInvalidAction, "pile %d out of range [0, %d)", action.Pile, len(piles))
	}
	if action.Amount < 1 || action.Amount > piles[action.Pile] {
		return nil, errors.Wrapf(ErrInvalidAction, "cannot take %d from pile %d holding %d",
			action.Amount, action.Pile, piles[action.Pile])
	}
	next := piles.Clone()
	next[action.Pile] -= action.Amount
	return next, nil
}
