package sim

import "math"

// Action is the result of ticking one shockwave.
type Action int

const (
	Continue Action = iota
	Retire
)

// Segment is one radial line of a shockwave band, on the orbital plane.
type Segment struct {
	X1, Z1 float64 // inner endpoint
	X2, Z2 float64 // outer endpoint
}

// Shockwave is a ring of radial line segments expanding outward from the
// sun. Its age is recomputed from startTime every tick, never stored.
type Shockwave struct {
	startTime float64
	angles    []float64
	Segments  []Segment
	Alpha     float64
}

// ShockwaveConfig fixes the parameters shared by every spawned effect.
type ShockwaveConfig struct {
	Duration    float64 // seconds of life
	Speed       float64 // outward expansion, world units per second
	StartRadius float64
	Thickness   float64 // radial band width
	LineCount   int
	Alpha       float64 // opacity at birth
}

// ShockwaveManager owns the active effects: it creates them on trigger,
// advances them each frame, and retires the expired ones.
type ShockwaveManager struct {
	cfg    ShockwaveConfig
	active []*Shockwave
}

func NewShockwaveManager(cfg ShockwaveConfig) *ShockwaveManager {
	return &ShockwaveManager{cfg: cfg}
}

// Spawn allocates a fresh effect stamped with the current elapsed time and
// appends it to the active collection. Birth geometry is a thickness-wide
// band; the first Tick collapses it to the clamped zero-width band before
// it starts expanding.
func (m *ShockwaveManager) Spawn(elapsed float64) *Shockwave {
	w := &Shockwave{
		startTime: elapsed,
		angles:    make([]float64, m.cfg.LineCount),
		Segments:  make([]Segment, m.cfg.LineCount),
		Alpha:     m.cfg.Alpha,
	}
	for i := range w.angles {
		a := float64(i) / float64(m.cfg.LineCount) * 2 * math.Pi
		w.angles[i] = a
		w.Segments[i] = segmentAt(a, m.cfg.StartRadius, m.cfg.StartRadius+m.cfg.Thickness)
	}
	m.active = append(m.active, w)
	return w
}

// Tick advances one effect to the given elapsed time. Past its duration it
// reports Retire and the caller drops it; otherwise the band geometry and
// opacity are recomputed in place from the effect's age.
func (m *ShockwaveManager) Tick(w *Shockwave, elapsed float64) Action {
	age := elapsed - w.startTime
	if age > m.cfg.Duration {
		return Retire
	}
	outer := m.cfg.StartRadius + age*m.cfg.Speed
	inner := outer - m.cfg.Thickness
	if inner < m.cfg.StartRadius {
		inner = m.cfg.StartRadius
	}
	for i, a := range w.angles {
		w.Segments[i] = segmentAt(a, inner, outer)
	}
	w.Alpha = m.cfg.Alpha * (1 - age/m.cfg.Duration)
	return Continue
}

// Update ticks every active effect and removes the retired ones, dropping
// their geometry so nothing accumulates across triggers.
func (m *ShockwaveManager) Update(elapsed float64) {
	kept := m.active[:0]
	for _, w := range m.active {
		if m.Tick(w, elapsed) == Retire {
			w.Segments = nil
			w.angles = nil
			continue
		}
		kept = append(kept, w)
	}
	// clear the tail so retired effects are collectable
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
}

// Active returns the live effects in spawn order.
func (m *ShockwaveManager) Active() []*Shockwave {
	return m.active
}

func segmentAt(angle, inner, outer float64) Segment {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Segment{
		X1: inner * cos, Z1: inner * sin,
		X2: outer * cos, Z2: outer * sin,
	}
}
