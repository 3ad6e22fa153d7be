// Package game is the ebiten shell around the ball string widget: it polls
// touch input, ticks the widget and draws it.
package game

import (
	"log"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ball-string/internal/config"
	"github.com/iburimskiy/ball-string/internal/sound"
	"github.com/iburimskiy/ball-string/internal/widget"
)

const (
	popFrequency = 9.0
	popDamping   = 0.35
	popKick      = 4.0
)

// now is the widget clock. Overridden in tests.
var now = time.Now

type Game struct {
	cfg    config.Config
	widget *widget.Widget
	click  *sound.Player

	// first active touch, the only one that drags
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool
	lastY    int
	tapArmed bool
	tapBox   rect // counter box when the tap began

	state widget.State

	// counter pop animation
	pop    harmonica.Spring
	popPos float64
	popVel float64

	width, height int
	counterImg    *ebiten.Image
}

// New builds the game. click may be nil when sound is unavailable.
func New(cfg config.Config, click *sound.Player) *Game {
	g := &Game{
		cfg:   cfg,
		click: click,
		pop:   harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), popFrequency, popDamping),
	}
	opts := widget.DefaultOptions()
	opts.Counting = cfg.Counter.Enabled
	opts.Feedback = g
	opts.Clock = func() time.Time { return now() }
	g.widget = widget.New(opts)
	return g
}

func (g *Game) Update() error {
	g.advance(g.pollTouches)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Layout tracks the window size. The ball window is sized from the first
// measured height only.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if outsideHeight > 0 {
		if g.widget.Height() == 0 {
			log.Printf("measured height %dpx", outsideHeight)
		}
		g.widget.Measure(float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Crossed is called by the widget when a ball passes the line.
func (g *Game) Crossed(count int) {
	if g.cfg.Feedback.Vibrate {
		vibrate(g.cfg.Feedback.VibrateDuration)
	}
	g.click.Click()
	if g.widget.Counting() {
		g.popVel += popKick
	}
}

func (g *Game) pollTouches() {
	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) == 0 {
			return
		}
		id := g.touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		g.touchID, g.touching, g.lastY = id, true, y
		g.pressAt(float64(x), float64(y))
		return
	}

	if inpututil.IsTouchJustReleased(g.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(g.touchID)
		g.touching = false
		g.releaseAt(float64(x), float64(y))
		return
	}
	if _, y := ebiten.TouchPosition(g.touchID); y != g.lastY {
		g.lastY = y
		g.moveTo(float64(y))
	}
}

func (g *Game) pressAt(x, y float64) {
	g.tapBox = g.counterBounds()
	g.tapArmed = g.widget.Counting() && g.tapBox.contains(x, y)
	g.widget.TouchStart(y)
}

func (g *Game) moveTo(y float64) {
	g.widget.TouchMove(y)
}

// releaseAt ends the drag. A touch that began and ended on the counter
// resets it.
func (g *Game) releaseAt(x, y float64) {
	g.widget.TouchEnd()
	if g.tapArmed && g.tapBox.contains(x, y) {
		g.widget.ResetCount()
	}
	g.tapArmed = false
}

// advance runs one tick. Inertia steps before input is read, so a fling
// released during this tick takes its first step on the next one.
func (g *Game) advance(input func()) {
	g.widget.Frame()
	input()
	g.widget.Commit()

	if s := g.widget.State(); s != g.state {
		log.Printf("%v -> %v", g.state, s)
		g.state = s
	}
	g.popPos, g.popVel = g.pop.Update(g.popPos, g.popVel, 0)
}
