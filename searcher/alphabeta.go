package searcher

import (
	"nim/experiments/metrics"
	"nim/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(s *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning. It holds no state
// between searches and is safe for concurrent use.
type AlphaBeta struct {
	depth        int
	goroutines   int
	pruning      bool
	evaluate     game.Evaluate
	newCollector func() metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines searches the children of the root concurrently.
func WithGoroutines(goroutines int) Option {
	return func(s *AlphaBeta) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithoutPruning turns the searcher into plain minimax. Results are identical, only more
// nodes are visited.
func WithoutPruning() Option {
	return func(s *AlphaBeta) {
		s.pruning = false
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.newCollector = metrics.NewCollector
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		depth:        DefaultDepth,
		goroutines:   1,
		pruning:      true,
		evaluate:     game.EvaluatePiles,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *AlphaBeta) Depth() int {
	return s.depth
}

func (s *AlphaBeta) BestAction(piles game.Piles) (game.Action, metrics.SearchMetric, error) {
	return s.BestActionAtDepth(piles, s.depth)
}

// BestActionAtDepth searches depth plies ahead with the side to move as the maximizing side.
// The piles are not modified.
func (s *AlphaBeta) BestActionAtDepth(piles game.Piles, depth int) (game.Action, metrics.SearchMetric, error) {
	if depth < 1 {
		return game.Action{}, metrics.SearchMetric{}, errors.Wrapf(ErrInvalidDepth, "got %d", depth)
	}
	if err := piles.Validate(); err != nil {
		return game.Action{}, metrics.SearchMetric{}, err
	}
	if game.IsTerminal(piles) {
		return game.Action{}, metrics.SearchMetric{}, errors.Wrapf(ErrNoActions, "piles %v", piles)
	}

	collector := s.newCollector()
	collector.Start(depth, s.goroutines, s.pruning)

	var action game.Action
	var value int
	if s.goroutines > 1 {
		var err error
		action, value, err = s.rootParallel(piles, depth, collector)
		if err != nil {
			return game.Action{}, metrics.SearchMetric{}, err
		}
	} else {
		action, value = s.root(piles.Clone(), depth, collector)
	}

	metric := collector.Complete()
	log.Debug().
		Stringer("piles", piles).
		Stringer("action", action).
		Int("value", value).
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return action, metric, nil
}

// Value returns the evaluation of the piles for the side to move (maximizing).
func (s *AlphaBeta) Value(piles game.Piles, depth int) int {
	return s.value(piles.Clone(), depth, true, negInf, posInf, s.newCollector())
}

// root expands the root, which is always maximizing, and keeps the first action with the
// highest evaluation.
func (s *AlphaBeta) root(scratch game.Piles, depth int, c metrics.Collector) (game.Action, int) {
	c.AddNode()
	alpha, beta := negInf, posInf
	var bestAction game.Action
	bestEval := negInf

	for _, action := range game.AvailableActions(scratch) {
		eval := s.child(scratch, action, depth-1, false, alpha, beta, c)
		if eval > bestEval {
			bestEval = eval
			bestAction = action
		}
		if !s.pruning {
			continue
		}
		alpha = max(alpha, bestEval)
		if beta <= alpha {
			c.AddCutoff()
			break
		}
	}
	return bestAction, bestEval
}

// rootParallel searches every root child with a full window on its own copy of the piles. The
// choice matches root: the first action whose value beats every earlier one.
func (s *AlphaBeta) rootParallel(piles game.Piles, depth int, c metrics.Collector) (game.Action, int, error) {
	c.AddNode()
	actions := game.AvailableActions(piles)
	evals := make([]int, len(actions))

	var g errgroup.Group
	g.SetLimit(s.goroutines)
	for i, action := range actions {
		i, action := i, action
		g.Go(func() error {
			evals[i] = s.child(piles.Clone(), action, depth-1, false, negInf, posInf, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return game.Action{}, 0, err
	}

	var bestAction game.Action
	bestEval := negInf
	for i, eval := range evals {
		if eval > bestEval {
			bestEval = eval
			bestAction = actions[i]
		}
	}
	return bestAction, bestEval, nil
}

// child plays the action on the scratch piles, evaluates the result and takes the action back.
func (s *AlphaBeta) child(scratch game.Piles, action game.Action, depth int, isMaximizing bool, alpha, beta int, c metrics.Collector) int {
	scratch[action.Pile] -= action.Amount
	defer func() { scratch[action.Pile] += action.Amount }()
	return s.value(scratch, depth, isMaximizing, alpha, beta, c)
}

// value is the evaluation of an interior node. It never reports an action.
func (s *AlphaBeta) value(piles game.Piles, depth int, isMaximizing bool, alpha, beta int, c metrics.Collector) int {
	c.AddNode()
	if depth <= 0 || game.IsTerminal(piles) {
		c.AddLeaf()
		return s.evaluate(piles, isMaximizing)
	}

	bestEval := posInf
	if isMaximizing {
		bestEval = negInf
	}

	for _, action := range game.AvailableActions(piles) {
		eval := s.child(piles, action, depth-1, !isMaximizing, alpha, beta, c)
		// Strictly better only, so the first action in order wins ties
		if (isMaximizing && eval > bestEval) || (!isMaximizing && eval < bestEval) {
			bestEval = eval
		}
		if !s.pruning {
			continue
		}
		if isMaximizing {
			alpha = max(alpha, bestEval)
		} else {
			beta = min(beta, bestEval)
		}
		if beta <= alpha {
			c.AddCutoff()
			break
		}
	}
	return bestEval
}
