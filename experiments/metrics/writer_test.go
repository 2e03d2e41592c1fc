package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nim/game"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func sampleMoves() []MoveRecord {
	return []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{
			Step:   1,
			Player: 0,
			Action: game.Action{Pile: 3, Amount: 2},
			SearchMetric: SearchMetric{
				Depth: 10, Pruning: true, Duration: time.Millisecond, Nodes: 120, Leaves: 80, Cutoffs: 9,
			},
		}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: 1, Action: game.Action{Pile: 0, Amount: 1}}},
	}
}

func TestWriter(t *testing.T) {
	t.Run("creating the run directory", func(t *testing.T) {
		root := t.TempDir()

		w, err := NewWriter(root, "depth")

		require.NoError(t, err)
		require.DirExists(t, w.BaseDir())
		require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.BaseDir()))
	})

	t.Run("writing agent configs", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		err = w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: AlphaBetaAgent, Depth: 4, Goroutines: 1},
			{ID: 2, Kind: RandomAgent, Seed: 7},
		})

		require.NoError(t, err)
		rows := readCSV(t, filepath.Join(w.BaseDir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "goroutines", "seed"},
			{"1", "alphabeta", "4", "1", "0"},
			{"2", "random", "0", "0", "7"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		err = w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{
			StartingPlayer: 1, Winner: 0, StartTime: start, EndTime: start.Add(time.Second),
			Duration: time.Second, TotalMoves: 7,
		}}})

		require.NoError(t, err)
		rows := readCSV(t, filepath.Join(w.BaseDir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "1", "0", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7"}, rows[1])
	})

	t.Run("writing move records as csv", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveRecords(sampleMoves()))

		rows := readCSV(t, filepath.Join(w.BaseDir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "0", "3", "2", "10", "true", "1ms", "120", "80", "9"}, rows[1])
	})

	t.Run("writing move records as parquet", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveRecordsParquet(sampleMoves()))

		path := filepath.Join(w.BaseDir(), MoveRecordsParquet)
		require.NoFileExists(t, path+".tmp")
		rows, err := parquet.ReadFile[MoveRow](path)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, toMoveRow(sampleMoves()[0]), rows[0])
		require.Equal(t, int64(time.Millisecond), rows[0].DurationNs)
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 2, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()

		got := c.Complete()

		require.Equal(t, 4, got.Depth)
		require.Equal(t, 2, got.Goroutines)
		require.True(t, got.Pruning)
		require.Equal(t, int64(2), got.Nodes)
		require.Equal(t, int64(1), got.Leaves)
		require.Equal(t, int64(1), got.Cutoffs)
	})

	t.Run("restarting resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, true)
		c.AddNode()
		c.Start(1, 1, true)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 2, true)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
