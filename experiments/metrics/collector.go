package metrics

import (
	"sync"
	"time"

	"breakthrough/game"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

type MoveMetric struct {
	Step     int         // 1-based move number within the game
	Player   game.Player // Side that moved
	Agent    string      // Agent kind of that side
	Move     game.Move
	Capture  bool
	Duration time.Duration // Time the agent took to choose
}

type GameMetric struct {
	Seed       int
	Agent1     string // Agent kind playing Player1
	Agent2     string // Agent kind playing Player2
	Winner     game.Player
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Captures   int
}

// Agent returns the agent kind that played p.
func (g GameMetric) Agent(p game.Player) string {
	switch p {
	case game.Player1:
		return g.Agent1
	case game.Player2:
		return g.Agent2
	default:
		return ""
	}
}

// SideSummary aggregates the games of one side.
type SideSummary struct {
	Agent        string
	Wins         int
	Moves        int
	Elapsed      time.Duration
	MeanMoveMs   float64
	StdMoveMs    float64
	MedianMoveMs float64
}

type Summary struct {
	Games   int
	Player1 SideSummary
	Player2 SideSummary
}

// Side returns the summary of p.
func (s Summary) Side(p game.Player) SideSummary {
	if p == game.Player1 {
		return s.Player1
	}
	return s.Player2
}

// Collector aggregates metrics of games that may run concurrently.
type Collector interface {
	AddMove(m MoveMetric)
	AddGame(g GameMetric)
	Complete() Summary
}

type collector struct {
	mu      sync.Mutex
	games   int
	agents  [3]string
	wins    [3]int
	elapsed [3]time.Duration
	timings [3][]float64 // Per-move milliseconds
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddMove(m MoveMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agents[m.Player] = m.Agent
	c.elapsed[m.Player] += m.Duration
	c.timings[m.Player] = append(c.timings[m.Player], float64(m.Duration)/float64(time.Millisecond))
}

func (c *collector) AddGame(g GameMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games++
	c.agents[game.Player1], c.agents[game.Player2] = g.Agent1, g.Agent2
	c.wins[g.Winner]++
}

func (c *collector) Complete() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Summary{
		Games:   c.games,
		Player1: c.side(game.Player1),
		Player2: c.side(game.Player2),
	}
}

func (c *collector) side(p game.Player) SideSummary {
	s := SideSummary{
		Agent:   c.agents[p],
		Wins:    c.wins[p],
		Moves:   len(c.timings[p]),
		Elapsed: c.elapsed[p],
	}
	switch {
	case s.Moves > 1:
		sorted := slices.Clone(c.timings[p])
		slices.Sort(sorted)
		s.MeanMoveMs, s.StdMoveMs = stat.MeanStdDev(sorted, nil)
		s.MedianMoveMs = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	case s.Moves == 1:
		s.MeanMoveMs = c.timings[p][0]
		s.MedianMoveMs = s.MeanMoveMs
	}
	return s
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddMove(m MoveMetric) {}
func (c *dummyCollector) AddGame(g GameMetric) {}
func (c *dummyCollector) Complete() Summary    { return Summary{} }
