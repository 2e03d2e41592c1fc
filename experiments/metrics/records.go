package metrics

type AgentKind string

const (
	AlphaBetaAgent AgentKind = "alphabeta"
	MinimaxAgent   AgentKind = "minimax" // Alpha-beta without pruning
	RandomAgent    AgentKind = "random"
)

type AgentConfig struct {
	ID         int
	Kind       AgentKind
	Depth      int
	Goroutines int
	Seed       uint64 // Random agents only
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID seated at 0
	Agent2 int // AgentConfig.ID seated at 1
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
