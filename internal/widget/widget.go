// Package widget holds the state of the ball string: scroll position, the
// active drag, inertia and the crossing counter. It has no rendering or input
// dependencies; the game shell feeds it touch events and ticks.
package widget

import (
	"time"

	"github.com/iburimskiy/ball-string/internal/balls"
	"github.com/iburimskiy/ball-string/internal/config"
	"github.com/iburimskiy/ball-string/internal/gesture"
	"github.com/iburimskiy/ball-string/internal/momentum"
	"github.com/iburimskiy/ball-string/internal/previous"
)

type State int

const (
	Idle State = iota
	Dragging
	Decaying
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Decaying:
		return "decaying"
	default:
		return "unknown"
	}
}

// Feedback is notified every time a ball crosses the threshold line.
// count is the counter value after the crossing.
type Feedback interface {
	Crossed(count int)
}

type Options struct {
	Spacing float64
	// Counting disabled keeps the feedback but never changes the count.
	Counting bool
	Clock    momentum.Clock
	Feedback Feedback
}

// DefaultOptions returns options for the standard ball spacing with counting on.
func DefaultOptions() Options {
	return Options{
		Spacing:  config.BallSpacing,
		Counting: true,
	}
}

type Widget struct {
	spacing  float64
	counting bool
	now      momentum.Clock
	feedback Feedback

	position float64
	touch    *gesture.Touch
	momentum *momentum.Momentum
	prev     previous.Value[float64]
	count    int

	height   float64
	measured bool
}

func New(opts Options) *Widget {
	if opts.Spacing <= 0 {
		opts.Spacing = config.BallSpacing
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Widget{
		spacing:  opts.Spacing,
		counting: opts.Counting,
		now:      opts.Clock,
		feedback: opts.Feedback,
		momentum: momentum.New(opts.Clock),
	}
}

// Measure records the container height. Only the first call has an effect.
func (w *Widget) Measure(height float64) {
	if w.measured {
		return
	}
	w.height = height
	w.measured = true
}

func (w *Widget) Height() float64 { return w.height }

// TouchStart halts inertia and begins a drag at y.
func (w *Widget) TouchStart(y float64) {
	w.momentum.Stop()
	w.touch = gesture.Begin(y, w.now())
}

func (w *Widget) TouchMove(y float64) {
	if w.touch == nil {
		return
	}
	w.touch.Move(y, w.now())
}

// TouchEnd commits the drag into the base position and hands the release
// velocity to the momentum loop.
func (w *Widget) TouchEnd() {
	t := w.touch
	if t == nil {
		return
	}
	velocity := t.Velocity()
	w.position += t.Delta()
	w.touch = nil

	base := w.position
	w.momentum.Start(velocity, func(distance float64) {
		w.position = base + distance
	})
}

// Frame advances inertia by one animation frame.
func (w *Widget) Frame() {
	w.momentum.Frame()
}

// Position is the effective scroll offset, including an in-progress drag.
func (w *Widget) Position() float64 {
	if w.touch != nil {
		return w.position + w.touch.Delta()
	}
	return w.position
}

// Commit compares the effective position with the one from the last commit
// and reports a crossing when they fall in different buckets. It fires at
// most once per call however many balls went past.
func (w *Widget) Commit() bool {
	pos := w.Position()
	prev, ok := w.prev.Get()
	w.prev.Set(pos)
	if !ok || !balls.Crossed(prev, pos, w.spacing) {
		return false
	}
	if w.counting {
		w.count++
	}
	if w.feedback != nil {
		w.feedback.Crossed(w.count)
	}
	return true
}

// Layout returns the sprites to draw for the current position.
func (w *Widget) Layout() []balls.Sprite {
	return balls.Sprites(w.Position(), w.height, w.spacing)
}

func (w *Widget) Count() int { return w.count }

func (w *Widget) ResetCount() { w.count = 0 }

func (w *Widget) Counting() bool { return w.counting }

func (w *Widget) State() State {
	switch {
	case w.touch != nil:
		return Dragging
	case w.momentum.Active():
		return Decaying
	default:
		return Idle
	}
}
