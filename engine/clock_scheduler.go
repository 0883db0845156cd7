package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/parameter"
)

// ClockScheduler runs game logic on a fixed tick
// Each tick's callback runs to completion on the scheduler goroutine; Stop takes effect between ticks
type ClockScheduler struct {
	tickInterval time.Duration
	onTick       func()

	nextTickDeadline time.Time // Next tick deadline for drift correction
	tickCount        atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler invoking onTick every tickInterval
func NewClockScheduler(tickInterval time.Duration, onTick func()) *ClockScheduler {
	return &ClockScheduler{
		tickInterval: tickInterval,
		onTick:       onTick,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop, subsequent calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// core.Go for centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick to finish
// Must not be called from inside onTick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			cs.wg.Wait()
			cs.running.Store(false)
		}
	})
}

// Done is closed once Stop has been requested
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.stopChan
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// TickInterval returns the configured interval
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// schedulerLoop runs the main scheduling loop
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		now := time.Now()
		if !now.Before(cs.nextTickDeadline) {
			cs.onTick()
			cs.tickCount.Add(1)

			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

			// Resync instead of bursting catch-up ticks after a long stall
			maxBehind := cs.tickInterval * parameter.MaxTickLag
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
		}

		sleepDuration := time.Until(cs.nextTickDeadline)
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}
