package engine

// ScriptedRandom replays queued values, then falls back to defaults
// Used by tests to make spawn, jitter, decay and pickup rolls deterministic
type ScriptedRandom struct {
	Floats       []float64
	DefaultFloat float64
	Ints         []int
}

// NewQuietRandom returns a source under which nothing spawns, explosions
// persist, enemies do not jitter and pickups grant triple shot
func NewQuietRandom() *ScriptedRandom {
	return &ScriptedRandom{DefaultFloat: 0.99}
}

// Float64 returns the next queued float or the default
func (r *ScriptedRandom) Float64() float64 {
	if len(r.Floats) > 0 {
		v := r.Floats[0]
		r.Floats = r.Floats[1:]
		return v
	}
	return r.DefaultFloat
}

// Intn returns the next queued int modulo n, or n/2 when the queue is empty
func (r *ScriptedRandom) Intn(n int) int {
	if len(r.Ints) > 0 {
		v := r.Ints[0]
		r.Ints = r.Ints[1:]
		return v % n
	}
	return n / 2
}
