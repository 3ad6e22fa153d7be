// Package momentum implements a frame-driven inertia loop.
//
// A Momentum is started with a release velocity and produces a decaying
// sequence of travelled distances, one per frame, until the velocity falls
// below config.MomentumThreshold. Frames are driven by the caller (one call
// to Frame per game tick), so there is never more than one loop running.
package momentum

import (
	"math"
	"time"

	"github.com/iburimskiy/ball-string/internal/config"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

type state struct {
	velocity float64 // px/ms
	lastTime time.Time
	distance float64
	callback func(distance float64)
}

// Momentum is either idle (no state) or decaying (state present).
type Momentum struct {
	now  Clock
	data *state
}

func New(now Clock) *Momentum {
	if now == nil {
		now = time.Now
	}
	return &Momentum{now: now}
}

// Start replaces any running sequence and schedules the first frame.
// callback receives the total distance travelled since Start.
func (m *Momentum) Start(velocity float64, callback func(distance float64)) {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	m.data = &state{
		velocity: velocity,
		lastTime: m.now(),
		callback: callback,
	}
}

// Stop cancels the pending frame.
func (m *Momentum) Stop() {
	m.data = nil
}

func (m *Momentum) Active() bool {
	return m.data != nil
}

// Frame runs the scheduled frame, if any.
func (m *Momentum) Frame() {
	d := m.data
	if d == nil {
		return
	}
	if math.Abs(d.velocity) < config.MomentumThreshold {
		m.data = nil
		return
	}

	now := m.now()
	elapsed := float64(now.Sub(d.lastTime)) / float64(time.Millisecond)
	d.distance += d.velocity * elapsed
	d.velocity *= config.MomentumDecay
	d.lastTime = now

	if d.callback != nil {
		d.callback(d.distance)
	}
}
