package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/status"
)

// Loop drives a Simulation on a fixed tick and is its only mutator
// Input goroutines Submit intents; renderers read snapshots from Frames
type Loop struct {
	sim      *Simulation
	interval time.Duration

	intents chan Intent
	frames  chan Snapshot

	paused  bool
	running atomic.Bool

	// Cached metric pointers
	statTickTime *status.AtomicFloat
	statTickPeak *status.AtomicFloat
	statPaused   *atomic.Bool
}

// NewLoop creates a loop for sim ticking every interval
func NewLoop(sim *Simulation, interval time.Duration, reg *status.Registry) *Loop {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop{
		sim:          sim,
		interval:     interval,
		intents:      make(chan Intent, constants.IntentBufferSize),
		frames:       make(chan Snapshot, 1),
		statTickTime: reg.Floats.Get(status.KeyTickTime),
		statTickPeak: reg.Floats.Get(status.KeyTickTimePeak),
		statPaused:   reg.Bools.Get(status.KeyPaused),
	}
}

// Submit queues an intent without blocking, returns false if the queue is full
func (l *Loop) Submit(in Intent) bool {
	select {
	case l.intents <- in:
		return true
	default:
		return false
	}
}

// Frames delivers the latest snapshot; stale frames are dropped, never queued
func (l *Loop) Frames() <-chan Snapshot {
	return l.frames
}

// Running reports whether Run is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Run ticks the simulation until ctx is cancelled or an exit intent arrives
// Returns nil on exit intent, ctx.Err() on cancellation
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.publish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in := <-l.intents:
			if in.Kind == IntentExit {
				log.Printf("exit requested")
				return nil
			}
			if l.apply(in) {
				l.publish()
			}

		case <-ticker.C:
			if l.paused || l.sim.GameOver() {
				continue
			}
			start := time.Now()
			l.sim.Tick()
			ms := float64(time.Since(start).Microseconds()) / 1000
			l.statTickTime.Set(ms)
			l.statTickPeak.Raise(ms)
			l.publish()
		}
	}
}

// apply mutates the simulation for one intent, returns true if state changed
func (l *Loop) apply(in Intent) bool {
	switch in.Kind {
	case IntentPause:
		if l.sim.GameOver() {
			return false
		}
		l.paused = !l.paused
		l.statPaused.Store(l.paused)
		return true

	case IntentRestart:
		if !l.sim.GameOver() {
			return false
		}
		l.sim.Restart()
		return true

	case IntentMove:
		if l.paused || l.sim.GameOver() {
			return false
		}
		l.sim.MovePlayer(in.DX)
		return true

	case IntentFire:
		if l.paused || l.sim.GameOver() {
			return false
		}
		l.sim.Fire()
		return true
	}
	return false
}

// publish replaces any unread frame with the current snapshot
// Only the loop goroutine sends, so the drain-then-send cannot race another sender
func (l *Loop) publish() {
	snap := l.sim.Snapshot()
	snap.Paused = l.paused

	select {
	case l.frames <- snap:
		return
	default:
	}
	select {
	case <-l.frames:
	default:
	}
	select {
	case l.frames <- snap:
	default:
	}
}
