package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/solar-visualization/internal/config"
)

// worldScale maps world units onto pixels so the outermost orbit always
// fits the window, whatever size it has been resized to.
func (g *Game) worldScale() float64 {
	outermost := config.BaseOrbitRadius + float64(len(g.bodies)-1)*config.OrbitSpacing
	half := float64(min(g.width, g.height))/2 - config.ViewMargin
	if half <= 0 || outermost <= 0 {
		return 1
	}
	return half / outermost
}

func (g *Game) center() (float64, float64) {
	return float64(g.width) / 2, float64(g.height) / 2
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 5, G: 6, B: 14, A: 255})
}

// drawSun layers additive-alpha discs from wide-and-faint to tight-and-
// bright, standing in for a bloom pass around the emissive core.
func (g *Game) drawSun(screen *ebiten.Image) {
	cx, cy := g.center()
	scale := g.worldScale()
	for i := config.SunGlowLayers; i >= 1; i-- {
		t := float64(i) / float64(config.SunGlowLayers)
		r := config.SunRadius * scale * (1 + t*config.SunGlowSpread)
		// quadratic falloff keeps the glow tight near the core
		alpha := uint8(90 * (1 - t) * (1 - t))
		glow := color.RGBA{R: 253, G: 184, B: 19, A: alpha}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), glow, true)
	}
	core := color.RGBA{R: 255, G: 230, B: 120, A: 255}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(config.SunRadius*scale), core, true)
}

func (g *Game) drawOrbits(screen *ebiten.Image) {
	cx, cy := g.center()
	scale := g.worldScale()
	guide := color.RGBA{R: 70, G: 75, B: 95, A: 60}
	for _, b := range g.bodies {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(b.OrbitRadius*scale), 1, guide, true)
	}
}

func (g *Game) drawPlanets(screen *ebiten.Image) {
	cx, cy := g.center()
	scale := g.worldScale()
	for i, b := range g.bodies {
		x, z := b.Position()
		sx := cx + x*scale
		sy := cy + z*scale
		r := b.Size * 4.5 * scale
		if r < 2 {
			r = 2
		}

		c := config.Planets[i].Color
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r), c, true)

		// spin marker: a surface line rotated by the accumulated spin,
		// so independent rotation speeds are visible
		mx := sx + math.Cos(b.Spin)*r
		my := sy + math.Sin(b.Spin)*r
		marker := color.RGBA{R: 255, G: 255, B: 255, A: 140}
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(mx), float32(my), 1, marker, true)
	}
}

func (g *Game) drawShockwaves(screen *ebiten.Image) {
	cx, cy := g.center()
	scale := g.worldScale()
	for i, w := range g.waves.Active() {
		a := clamp01(w.Alpha)
		// concurrent waves drift apart in hue so overlapping rings read
		// as separate pulses
		cr, cg, cb := hsvToRgb(195+float64(i)*30, 0.45, 1.0)
		c := color.RGBA{R: cr, G: cg, B: cb, A: uint8(a * 255)}
		for _, s := range w.Segments {
			vector.StrokeLine(screen,
				float32(cx+s.X1*scale), float32(cy+s.Z1*scale),
				float32(cx+s.X2*scale), float32(cy+s.Z2*scale),
				2, c, true)
		}
	}
}

func (g *Game) drawStartButton(screen *ebiten.Image) {
	bx, by := g.buttonRect()

	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Start"
	textWidth := len(text) * 8
	ebitenutil.DebugPrintAt(screen, text, bx+(config.ButtonWidth-textWidth)/2, by+(config.ButtonHeight-8)/2)
}
