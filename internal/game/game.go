package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/bokeh/internal/config"
)

// Game hosts the particle loop inside ebiten. Each ebiten tick is one
// animation frame.
type Game struct {
	canvas  *ImageCanvas
	emitter *Emitter
	loop    *Loop
	sched   *FrameScheduler

	started time.Time
	showHUD bool
}

// NewGame builds a canvas sized to the window, an emitter centred on it and
// a running loop.
func NewGame(settings config.Settings) (*Game, error) {
	w, h := config.WindowWidth, config.WindowHeight

	emitter, err := NewEmitter(float64(w)/2, float64(h)/2, settings, w, h)
	if err != nil {
		return nil, err
	}

	g := &Game{
		canvas:  NewImageCanvas(w, h),
		emitter: emitter,
		sched:   &FrameScheduler{},
		started: time.Now(),
	}
	g.loop = NewLoop(g.canvas, g.emitter, g.sched)
	g.loop.Start()
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Reset()
	}

	g.sched.Tick()
	return nil
}

func (g *Game) togglePause() {
	if g.loop.Running() {
		g.loop.Stop()
	} else {
		g.loop.Start()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)

	if !g.showHUD {
		return
	}
	status := "Running - Space to pause"
	if !g.loop.Running() {
		status = "Paused - Space to resume"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, g.hudStats(), 12, 28)
}

func (g *Game) hudStats() string {
	return fmt.Sprintf("particles: %d  uptime: %s  frame: %.1fms",
		g.emitter.Len(),
		formatDuration(time.Since(g.started)),
		float64(g.loop.AverageFrameTime())/float64(time.Millisecond),
	)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}
