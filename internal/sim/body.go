package sim

import (
	"math"

	"github.com/iburimskiy/solar-visualization/internal/config"
)

// Body is one orbiting planet. Angle is the source of truth for its
// position; the Cartesian point is always derived from it, never stored.
// Spin accumulates unbounded (wrap-around is cosmetic only).
type Body struct {
	Name         string
	Size         float64 // visual radius factor, relative to Earth
	OrbitRadius  float64
	Angle        float64 // radians in [0, 2π)
	AngularSpeed float64 // radians per second along the orbit
	SpinSpeed    float64 // radians per second around the body's own axis
	Spin         float64
}

// BuildSystem turns the static planet table into the ordered list of
// orbiting bodies. Orbit radius grows with table index, and angular speed
// falls off as 1/sqrt(r/base) so outer planets orbit slower, mimicking
// Keplerian pacing without any actual gravity.
func BuildSystem(specs []config.PlanetSpec) []*Body {
	bodies := make([]*Body, 0, len(specs))
	for i, s := range specs {
		r := config.BaseOrbitRadius + float64(i)*config.OrbitSpacing
		bodies = append(bodies, &Body{
			Name:         s.Name,
			Size:         s.Size,
			OrbitRadius:  r,
			Angle:        math.Mod(float64(i)*2.39996, 2*math.Pi), // golden-angle spread so planets don't start aligned
			AngularSpeed: config.BaseOrbitSpeed / math.Sqrt(r/config.BaseOrbitRadius),
			SpinSpeed:    config.BaseSpinSpeed * s.RotationFactor,
		})
	}
	return bodies
}
