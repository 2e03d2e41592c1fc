package experiments

import (
	"path/filepath"
	"testing"

	"nim/experiments/metrics"
	"nim/game"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("playing and storing every game", func(t *testing.T) {
		ai := metrics.AgentConfig{ID: 1, Kind: metrics.AlphaBetaAgent, Depth: 3, Goroutines: 1}
		random := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: 5}
		exp := Experiment{
			Name:     "test",
			Configs:  []metrics.AgentConfig{ai, random},
			MatchUps: [][2]metrics.AgentConfig{{random, ai}},
		}
		settings := Settings{Piles: game.Piles{1, 2, 3}, NumGames: 4, Workers: 2, OutDir: t.TempDir()}

		results, err := Run(exp, settings)

		require.NoError(t, err)
		require.Len(t, results.Games, 4)
		for i, record := range results.Games {
			require.Equal(t, i+1, record.ID, "Games should be ordered by ID")
			require.Equal(t, i%2, record.StartingPlayer, "Starting seat should alternate")
			require.Equal(t, 2, record.Agent1)
			require.Equal(t, 1, record.Agent2)
		}

		moves := 0
		for _, record := range results.Games {
			moves += record.TotalMoves
		}
		require.Len(t, results.Moves, moves)

		wins := Wins(results.Games)
		require.Equal(t, 4, wins[1]+wins[2])

		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv", metrics.MoveRecordsParquet} {
			require.FileExists(t, filepath.Join(results.Dir, name))
		}
	})

	t.Run("minimax and alpha-beta play the same game", func(t *testing.T) {
		exp := Experiment{
			Name: "pruning",
			MatchUps: [][2]metrics.AgentConfig{{
				{ID: 1, Kind: metrics.AlphaBetaAgent, Depth: 4},
				{ID: 2, Kind: metrics.MinimaxAgent, Depth: 4},
			}},
		}
		settings := Settings{Piles: game.Piles{1, 3, 2}, NumGames: 1, OutDir: t.TempDir()}

		results, err := Run(exp, settings)

		require.NoError(t, err)
		for _, move := range results.Moves {
			require.Equal(t, move.Player == 0, move.Pruning)
			require.Positive(t, move.Nodes)
		}
	})

	t.Run("rejecting zero games", func(t *testing.T) {
		_, err := Run(DepthExperiment(), Settings{Piles: game.Piles{1}, NumGames: 0})

		require.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"depth", "pruning"} {
		exp, ok := Lookup(name)

		require.True(t, ok)
		require.Equal(t, name, exp.Name)
		require.NotEmpty(t, exp.MatchUps)
	}

	_, ok := Lookup("speedup")
	require.False(t, ok)
}

func TestNewPlayer(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		require.Panics(t, func() {
			newPlayer(metrics.AgentConfig{Kind: "mcts"}, 1)
		})
	})

	t.Run("naming by kind and ID", func(t *testing.T) {
		p := newPlayer(metrics.AgentConfig{ID: 3, Kind: metrics.RandomAgent}, 1)

		require.Equal(t, "random-3", p.Name())
	})
}
