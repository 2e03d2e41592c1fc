package experiments

import (
	"fmt"

	"nim/engine"
	"nim/experiments/metrics"
	"nim/game"
	"nim/player"
	"nim/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Experiment pairs agent configs into match ups. The first config of a match up is Agent1.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

type Settings struct {
	Piles    game.Piles
	NumGames int // Per match up
	Workers  int // Games played concurrently
	OutDir   string
}

type Results struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

var baseline = metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}

// DepthExperiment pairs alpha-beta agents of increasing depth against the random baseline.
func DepthExperiment() Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.AlphaBetaAgent, Depth: 2, Goroutines: 1},
		{ID: 2, Kind: metrics.AlphaBetaAgent, Depth: 4, Goroutines: 1},
		{ID: 3, Kind: metrics.AlphaBetaAgent, Depth: 6, Goroutines: 1},
		{ID: 4, Kind: metrics.AlphaBetaAgent, Depth: 8, Goroutines: 1},
		{ID: 5, Kind: metrics.AlphaBetaAgent, Depth: 10, Goroutines: 1},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "depth", Configs: append(configs, baseline), MatchUps: matchUps}
}

// PruningExperiment pairs alpha-beta with plain minimax at equal depth. Both play the same moves,
// so the move records only differ in node counts and duration.
func PruningExperiment() Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.AlphaBetaAgent, Depth: 4, Goroutines: 1},
		{ID: 2, Kind: metrics.MinimaxAgent, Depth: 4, Goroutines: 1},
		{ID: 3, Kind: metrics.AlphaBetaAgent, Depth: 6, Goroutines: 1},
		{ID: 4, Kind: metrics.MinimaxAgent, Depth: 6, Goroutines: 1},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[2], configs[3]},
	}
	return Experiment{Name: "pruning", Configs: configs, MatchUps: matchUps}
}

// Lookup returns the predefined experiment with the given name.
func Lookup(name string) (Experiment, bool) {
	switch name {
	case "depth":
		return DepthExperiment(), true
	case "pruning":
		return PruningExperiment(), true
	default:
		return Experiment{}, false
	}
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays every match up NumGames times, alternating the starting seat, and stores the records
// under OutDir.
func Run(exp Experiment, settings Settings) (Results, error) {
	if settings.NumGames <= 0 {
		return Results{}, errors.New("number of games must be positive")
	}
	workers := max(settings.Workers, 1)

	log.Info().Msgf("starting %s experiment: %d match ups, %d games each", exp.Name, len(exp.MatchUps), settings.NumGames)

	results := make([]gameResult, len(exp.MatchUps)*settings.NumGames)
	var g errgroup.Group
	g.SetLimit(workers)
	for mi, matchUp := range exp.MatchUps {
		mi, matchUp := mi, matchUp
		for i := 0; i < settings.NumGames; i++ {
			i := i
			id := mi*settings.NumGames + i + 1
			g.Go(func() error {
				result, err := runGame(id, matchUp, i%2, settings.Piles)
				if err != nil {
					return errors.Wrapf(err, "match up %d game %d", mi+1, i+1)
				}
				results[id-1] = result
				log.Info().Msgf("completed match up %d of %d game %d with winner: %s",
					mi+1, len(exp.MatchUps), i+1, result.record.WinnerName)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	out := Results{}
	for _, result := range results {
		out.Games = append(out.Games, result.record)
		for _, mm := range result.moves {
			out.Moves = append(out.Moves, metrics.MoveRecord{Game: result.record.ID, MoveMetric: mm})
		}
	}
	for agent, wins := range Wins(out.Games) {
		log.Info().Int("agent", agent).Int("wins", wins).Msg("experiment wins")
	}

	dir, err := store(exp, settings.OutDir, out)
	if err != nil {
		return Results{}, err
	}
	out.Dir = dir
	log.Info().Msgf("completed %s experiment, records in %s", exp.Name, dir)
	return out, nil
}

func store(exp Experiment, outDir string, results Results) (string, error) {
	writer, err := metrics.NewWriter(outDir, exp.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", errors.Wrap(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", errors.Wrap(err, "failed to write game records")
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", errors.Wrap(err, "failed to write move records")
	}
	if err := writer.WriteMoveRecordsParquet(results.Moves); err != nil {
		return "", errors.Wrap(err, "failed to write parquet move records")
	}
	return writer.BaseDir(), nil
}

// runGame executes a single game between two agents
func runGame(id int, matchUp [2]metrics.AgentConfig, starting int, piles game.Piles) (gameResult, error) {
	players := [2]player.Player{
		newPlayer(matchUp[0], id),
		newPlayer(matchUp[1], id),
	}
	e, err := engine.New(piles, players, engine.WithStartingPlayer(starting))
	if err != nil {
		return gameResult{}, err
	}

	result, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}
	return gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Agent1:     matchUp[0].ID,
			Agent2:     matchUp[1].ID,
			GameMetric: result.Game,
		},
		moves: result.Moves,
	}, nil
}

func newPlayer(config metrics.AgentConfig, gameID int) player.Player {
	name := fmt.Sprintf("%s-%d", config.Kind, config.ID)
	switch config.Kind {
	case metrics.RandomAgent:
		// Different games get different, but reproducible, random moves
		return player.NewRandom(name, config.Seed+uint64(gameID))
	case metrics.AlphaBetaAgent, metrics.MinimaxAgent:
		return player.NewAI(name, createSearcher(config))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func createSearcher(config metrics.AgentConfig) *searcher.AlphaBeta {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Kind == metrics.MinimaxAgent {
		options = append(options, searcher.WithoutPruning())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewAlphaBeta(options...)
}

// Wins counts the games won by each agent ID.
func Wins(records []metrics.GameRecord) map[int]int {
	wins := make(map[int]int)
	for _, record := range records {
		if record.Winner == 0 {
			wins[record.Agent1]++
		} else {
			wins[record.Agent2]++
		}
	}
	return wins
}
