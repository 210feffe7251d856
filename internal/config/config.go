package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// World-to-screen fit: the outermost orbit is scaled to fill the
	// smaller window dimension minus this margin (pixels).
	ViewMargin = 40

	// Sun
	SunRadius     = 14.0
	SunGlowLayers = 6
	SunGlowSpread = 3.2

	// Orbits
	BaseOrbitRadius = 28.0 // world units, innermost planet
	OrbitSpacing    = 13.0 // world units added per planet index
	BaseOrbitSpeed  = 0.55 // rad/s at BaseOrbitRadius; outer orbits slow as 1/sqrt(r/base)
	BaseSpinSpeed   = 0.9  // rad/s, scaled by each planet's rotation factor

	// Shockwaves
	ShockwaveDuration    = 2.4  // seconds
	ShockwaveSpeed       = 70.0 // world units per second, outward
	ShockwaveStartRadius = 8.0  // world units
	ShockwaveThickness   = 5.0  // world units, radial band width
	ShockwaveLineCount   = 96
	ShockwaveAlpha       = 0.9 // opacity at birth, fades linearly to 0

	// A fired trigger is released again after this real-time delay, so
	// minor backward jitter in playback time cannot block it forever.
	TriggerGraceDelay = 5 * time.Second

	// Button dimensions
	ButtonWidth  = 160
	ButtonHeight = 48
)

// TriggerTimes are the pre-authored playback timestamps (seconds) at which
// a shockwave fires. Authored against the track, not detected from it.
var TriggerTimes = []float64{
	3.2, 11.9, 20.6, 29.3, 38.0, 46.7, 55.4, 64.1, 72.8, 81.5,
}

// PlanetSpec is the static per-planet configuration. Size is relative to
// Earth (visually compressed for the gas giants so everything fits), and
// RotationFactor scales BaseSpinSpeed.
type PlanetSpec struct {
	Name           string
	Size           float64
	RotationFactor float64
	Color          color.RGBA
}

var Planets = []PlanetSpec{
	{Name: "Mercury", Size: 0.38, RotationFactor: 0.3, Color: color.RGBA{0xB5, 0xB5, 0xB5, 0xFF}},
	{Name: "Venus", Size: 0.95, RotationFactor: 0.2, Color: color.RGBA{0xE8, 0xCD, 0xA2, 0xFF}},
	{Name: "Earth", Size: 1.0, RotationFactor: 1.0, Color: color.RGBA{0x2E, 0x86, 0xAB, 0xFF}},
	{Name: "Mars", Size: 0.53, RotationFactor: 0.97, Color: color.RGBA{0xC1, 0x44, 0x0E, 0xFF}},
	{Name: "Jupiter", Size: 2.4, RotationFactor: 2.4, Color: color.RGBA{0xC8, 0x8B, 0x3A, 0xFF}},
	{Name: "Saturn", Size: 2.1, RotationFactor: 2.2, Color: color.RGBA{0xE4, 0xD1, 0x91, 0xFF}},
	{Name: "Uranus", Size: 1.6, RotationFactor: 1.4, Color: color.RGBA{0x7D, 0xE8, 0xE8, 0xFF}},
	{Name: "Neptune", Size: 1.55, RotationFactor: 1.5, Color: color.RGBA{0x3F, 0x54, 0xBA, 0xFF}},
}
