package game

import (
	"time"

	"go.uber.org/zap"
)

// TickScheduler drives the three recurring game loops. Each loop runs
// on its own ticker so a slow save in one cannot starve the others.
type TickScheduler struct {
	gameManager *GameManager
	interval    time.Duration
	stopChan    chan struct{}
}

// NewTickScheduler creates a scheduler ticking at the given interval.
func NewTickScheduler(gameManager *GameManager, interval time.Duration) *TickScheduler {
	return &TickScheduler{
		gameManager: gameManager,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start launches the play-time, energy-regen and production loops.
func (ts *TickScheduler) Start() {
	ts.gameManager.Logger.Info("Tick scheduler starting",
		zap.Duration("interval", ts.interval))

	go ts.run(func() {
		ts.gameManager.AccruePlayTime(ts.interval.Milliseconds())
	})
	go ts.run(func() {
		ts.gameManager.RegenerateEnergy()
	})
	go ts.run(func() {
		ts.gameManager.AdvanceProduction()
	})
}

// Stop halts all loops.
func (ts *TickScheduler) Stop() {
	close(ts.stopChan)
	ts.gameManager.Logger.Info("Tick scheduler stopped")
}

func (ts *TickScheduler) run(tick func()) {
	ticker := time.NewTicker(ts.interval)
	for {
		select {
		case <-ticker.C:
			tick()
		case <-ts.stopChan:
			ticker.Stop()
			return
		}
	}
}
