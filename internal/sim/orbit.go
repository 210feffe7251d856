package sim

import "math"

// Advance moves a body along its circular path by dt seconds and spins it.
// The orbit angle is normalized with modulo rather than a single
// conditional subtraction, so a delta longer than a full period still
// lands in [0, 2π).
func Advance(b *Body, dt float64) {
	b.Angle = math.Mod(b.Angle+b.AngularSpeed*dt, 2*math.Pi)
	if b.Angle < 0 {
		b.Angle += 2 * math.Pi
	}
	b.Spin += b.SpinSpeed * dt
}

// Position derives the body's point on the orbital plane from its angle.
func (b *Body) Position() (x, z float64) {
	return b.OrbitRadius * math.Cos(b.Angle), b.OrbitRadius * math.Sin(b.Angle)
}
