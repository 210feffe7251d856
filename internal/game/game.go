package game

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/solar-visualization/internal/config"
	"github.com/iburimskiy/solar-visualization/internal/sim"
)

// mediaSource is what the frame loop needs from the audio side: current
// playback position in seconds. Zero forever is fine (no track, or
// playback failed to start); triggers simply never fire.
type mediaSource interface {
	CurrentTime() float64
}

// Game drives the solar-system simulation from Ebiten's frame callback.
type Game struct {
	// simulation
	clock    *sim.Clock
	bodies   []*sim.Body
	waves    *sim.ShockwaveManager
	triggers *sim.TriggerMonitor

	// media
	player *Player // nil when running visuals-only
	media  mediaSource

	// frame-loop state
	startOnce sync.Once
	running   bool
	prevTime  float64
	paused    bool

	// window size tracked through Layout for resize handling
	width, height int

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func New() *Game {
	return &Game{
		bodies: sim.BuildSystem(config.Planets),
		waves: sim.NewShockwaveManager(sim.ShockwaveConfig{
			Duration:    config.ShockwaveDuration,
			Speed:       config.ShockwaveSpeed,
			StartRadius: config.ShockwaveStartRadius,
			Thickness:   config.ShockwaveThickness,
			LineCount:   config.ShockwaveLineCount,
			Alpha:       config.ShockwaveAlpha,
		}),
		triggers: sim.NewTriggerMonitor(config.TriggerTimes, config.TriggerGraceDelay),
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
}

// SetPlayer attaches a loaded track before the loop starts.
func (g *Game) SetPlayer(p *Player) {
	g.player = p
	g.media = p
}

func (g *Game) Update() error {
	if !g.running {
		g.updateStartButton()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.running && g.player != nil {
		g.paused = g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if g.player != nil {
			g.player.Close()
		}
		return ebiten.Termination
	}

	if g.running {
		dt := g.clock.Delta()
		elapsed := g.clock.Elapsed()
		var now float64
		if g.media != nil {
			now = g.media.CurrentTime()
		}
		g.step(dt, elapsed, now)
	}
	return nil
}

// step is one simulation frame: poll triggers against the playback window,
// spawn a shockwave per crossing, advance every body, then advance and
// retire shockwaves. Order is fixed; Draw submits the result.
func (g *Game) step(dt, elapsed, mediaTime float64) {
	for range g.triggers.Poll(g.prevTime, mediaTime) {
		g.waves.Spawn(elapsed)
	}
	g.prevTime = mediaTime

	for _, b := range g.bodies {
		sim.Advance(b, dt)
	}
	g.waves.Update(elapsed)
}

func (g *Game) updateStartButton() {
	mouseX, mouseY := ebiten.CursorPosition()
	bx, by := g.buttonRect()
	g.buttonHovered = mouseX >= bx && mouseX <= bx+config.ButtonWidth &&
		mouseY >= by && mouseY <= by+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.start()
		}
		g.buttonPressed = false
	}
}

// start unmutes and begins playback, then starts the frame loop. It is
// idempotent: the loop starts exactly once no matter how the playback
// request resolves. A playback failure only costs the audio; the
// animation runs regardless, with a notification to the user.
func (g *Game) start() {
	g.startOnce.Do(func() {
		if g.player != nil {
			g.player.SetMuted(false)
			if err := g.player.Play(); err != nil {
				g.lastErr = err
				go func() {
					_ = zenity.Error("Audio playback could not start: "+err.Error(),
						zenity.Title("Solar Visualization"))
				}()
			}
		}
		g.clock = sim.NewClock()
		g.running = true
	})
}

func (g *Game) buttonRect() (x, y int) {
	return (g.width - config.ButtonWidth) / 2, (g.height-config.ButtonHeight)/2 + g.height/4
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawSun(screen)
	g.drawOrbits(screen)
	g.drawPlanets(screen)
	g.drawShockwaves(screen)

	if !g.running {
		g.drawStartButton(screen)
	}

	status := ""
	switch {
	case !g.running && g.player != nil:
		status = "Click Start to play"
	case !g.running:
		status = "Click Start (no track loaded - visuals only)"
	case g.paused:
		status = "Paused - Space to resume, Esc/Q to quit"
	case g.player != nil:
		status = fmt.Sprintf("Playing %s / %s - Space to pause, Esc/Q to quit",
			formatDuration(secondsToDuration(g.media.CurrentTime())),
			formatDuration(g.player.Duration()))
	default:
		status = "Running (no audio) - Esc/Q to quit"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout tracks the outside size so drawing recenters and rescales when
// the window is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
