// Package status holds lock-free game counters readable from any goroutine
package status

import (
	"fmt"
	"sync/atomic"
)

// Key names a metric; dotted "owner.name" form
type Key string

// Metric keys written by the engine
const (
	KeyTicks         Key = "engine.ticks"
	KeyShotsFired    Key = "player.shots"
	KeyEnemiesKilled Key = "enemy.killed"
	KeyBossesSpawned Key = "boss.spawned"
	KeyBossesKilled  Key = "boss.killed"
	KeyPowerUps      Key = "reward.collected"
	KeyRounds        Key = "session.rounds"
	KeyTickTime      Key = "engine.tick_ms"
	KeyTickTimePeak  Key = "engine.tick_ms_peak"
	KeyPaused        Key = "engine.paused"
)

// Registry is the central metrics facade
// Owners cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len()
}

// Dump renders every metric as "key=value" lines in sorted key order per type
func (r *Registry) Dump() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Each(func(key Key, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Each(func(key Key, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", key, v.Get()))
	})
	r.Bools.Each(func(key Key, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	return lines
}
