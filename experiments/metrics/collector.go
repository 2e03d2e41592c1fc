package metrics

import (
	"sync/atomic"
	"time"

	"nim/game"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Pruning    bool
	Duration   time.Duration
	Nodes      int64 // Every node entered, leaves included
	Leaves     int64 // Heuristic evaluations
	Cutoffs    int64
}

type MoveMetric struct {
	Step   int
	Player int // Seat index, 0 or 1
	Action game.Action
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Seat index
	Winner         int // Seat index
	WinnerName     string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, goroutines int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, pruning bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) AddCutoff()                                {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
