package metrics

import (
	"sync/atomic"
	"time"

	"hanabi/engine"
	"hanabi/game"
)

type RunMetric struct {
	Workers  int
	Rounds   int
	Aborted  int
	Perfect  int
	Turns    int
	Duration time.Duration
}

// RoundRecord is the outcome of one round of a run.
type RoundRecord struct {
	Index    int
	Seed     uint64
	Duration time.Duration
	Err      error
	engine.Result
}

// Collector counts rounds as workers finish them. It is safe for
// concurrent use.
type Collector interface {
	Start(workers int)
	AddRound(result engine.Result)
	Complete() RunMetric
}

type collector struct {
	workers   int
	startTime time.Time
	rounds    atomic.Int32
	aborted   atomic.Int32
	perfect   atomic.Int32
	turns     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
}

func (m *collector) AddRound(result engine.Result) {
	m.rounds.Add(1)
	m.turns.Add(int64(result.Turns))
	if result.Reason == game.Aborted {
		m.aborted.Add(1)
	}
	if result.Perfect {
		m.perfect.Add(1)
	}
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Workers:  m.workers,
		Rounds:   int(m.rounds.Load()),
		Aborted:  int(m.aborted.Load()),
		Perfect:  int(m.perfect.Load()),
		Turns:    int(m.turns.Load()),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int)             {}
func (m *dummyCollector) AddRound(result engine.Result) {}
func (m *dummyCollector) Complete() RunMetric           { return RunMetric{} }
