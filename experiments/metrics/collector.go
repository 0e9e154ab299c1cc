package metrics

import (
	"time"

	"tichess/game"
)

type GameMetric struct {
	ID         string
	First      string // Player ID
	Second     string // Player ID
	Winner     string // Player ID, "" if the game stopped without one
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Placements int
	Events     map[game.EventKind]int
}

type Collector interface {
	Start(id, first, second string)
	Observe(res game.Result)
	AddMove()
	Complete(winner string) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(id, first, second string) {
	c.metric = GameMetric{
		ID:        id,
		First:     first,
		Second:    second,
		StartTime: time.Now(),
		Events:    make(map[game.EventKind]int),
	}
}

// Observe tallies the events of a successful action.
func (c *collector) Observe(res game.Result) {
	if !res.Success {
		return
	}
	for _, e := range res.Events {
		c.metric.Events[e.Kind]++
	}
}

func (c *collector) AddMove() {
	c.metric.TotalMoves++
}

func (c *collector) Complete(winner string) GameMetric {
	m := c.metric
	m.Winner = winner
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Placements = m.Events[game.KindPiecePlaced]
	return m
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(id, first, second string) {}
func (c *dummyCollector) Observe(res game.Result)         {}
func (c *dummyCollector) AddMove()                        {}
func (c *dummyCollector) Complete(winner string) GameMetric {
	return GameMetric{Winner: winner}
}
