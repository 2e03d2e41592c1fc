package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nim/experiments/metrics"
	"nim/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Human reads actions typed as "<pile> <count>" and asks again until a legal one is given.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{name: name, scanner: bufio.NewScanner(in), out: out}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) ChooseAction(piles game.Piles) (game.Action, metrics.SearchMetric, error) {
	fmt.Fprintln(h.out, "Your turn")
	for {
		fmt.Fprint(h.out, "Choose a pile and count: ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Action{}, metrics.SearchMetric{}, errors.Wrap(err, "read move")
			}
			return game.Action{}, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}

		action, err := parseAction(h.scanner.Text())
		if err == nil && game.IsLegal(piles, action) {
			return action, metrics.SearchMetric{}, nil
		}
		log.Warn().Str("input", h.scanner.Text()).Msg("rejected move")
		fmt.Fprintln(h.out, "Invalid move, try again")
	}
}

func parseAction(line string) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Action{}, errors.Errorf("expected 2 numbers, got %d", len(fields))
	}
	pile, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Action{}, errors.Wrap(err, "pile")
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Action{}, errors.Wrap(err, "count")
	}
	return game.Action{Pile: pile, Amount: amount}, nil
}
