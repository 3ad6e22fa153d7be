// Package gesture records a single-finger vertical drag and the speed at
// which it was released.
package gesture

import (
	"math"
	"time"
)

// Touch is the record of one drag, from touch-start to touch-end.
type Touch struct {
	StartY float64

	// Previous sample, valid once the touch has moved.
	PrevY    float64
	PrevTime time.Time
	HasPrev  bool

	Y    float64
	Time time.Time
}

// Begin starts a touch at y. The start point is also the current point.
func Begin(y float64, at time.Time) *Touch {
	return &Touch{
		StartY: y,
		Y:      y,
		Time:   at,
	}
}

// Move records a new current point, keeping the old one as previous.
func (t *Touch) Move(y float64, at time.Time) {
	t.PrevY, t.PrevTime, t.HasPrev = t.Y, t.Time, true
	t.Y, t.Time = y, at
}

// Delta is the net vertical drag distance so far.
func (t *Touch) Delta() float64 {
	return t.Y - t.StartY
}

// Velocity returns the speed between the last two samples in px/ms.
// A touch that never moved, or whose last two samples share a timestamp,
// has zero velocity.
func (t *Touch) Velocity() float64 {
	if !t.HasPrev {
		return 0
	}
	dt := float64(t.Time.Sub(t.PrevTime)) / float64(time.Millisecond)
	if dt <= 0 {
		return 0
	}
	v := (t.Y - t.PrevY) / dt
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
