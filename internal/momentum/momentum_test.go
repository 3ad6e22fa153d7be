package momentum

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMomentum() (*Momentum, *fakeClock) {
	c := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	return New(c.now), c
}

func TestDecayAccumulatesDistance(t *testing.T) {
	m, clock := newTestMomentum()

	var got []float64
	m.Start(1, func(d float64) { got = append(got, d) })

	want := 0.0
	v := 1.0
	for i := 0; i < 5; i++ {
		clock.advance(16 * time.Millisecond)
		m.Frame()
		want += v * 16
		v *= 0.95
		if math.Abs(got[i]-want) > 1e-9 {
			t.Fatalf("frame %d: distance=%f want=%f", i, got[i], want)
		}
	}
}

func TestDecayTerminatesBelowThreshold(t *testing.T) {
	m, clock := newTestMomentum()

	calls := 0
	last := 0.0
	m.Start(1, func(d float64) {
		if d <= last {
			t.Fatalf("distance did not grow: %f -> %f", last, d)
		}
		last = d
		calls++
	})

	frames := 0
	for m.Active() && frames < 1000 {
		clock.advance(16 * time.Millisecond)
		m.Frame()
		frames++
	}
	if m.Active() {
		t.Fatalf("momentum still active after %d frames", frames)
	}
	// 0.95^134 >= 0.001 > 0.95^135
	if calls != 135 {
		t.Fatalf("callbacks=%d want 135", calls)
	}
	if frames != calls+1 {
		t.Fatalf("frames=%d want %d", frames, calls+1)
	}

	clock.advance(16 * time.Millisecond)
	m.Frame()
	if calls != 135 {
		t.Fatalf("callback fired after termination")
	}
}

func TestNegativeVelocity(t *testing.T) {
	m, clock := newTestMomentum()
	var d float64
	m.Start(-2, func(v float64) { d = v })
	clock.advance(10 * time.Millisecond)
	m.Frame()
	if d != -20 {
		t.Fatalf("distance=%f want -20", d)
	}
}

func TestStopCancelsPendingFrame(t *testing.T) {
	m, clock := newTestMomentum()
	calls := 0
	m.Start(5, func(float64) { calls++ })
	m.Stop()
	clock.advance(16 * time.Millisecond)
	m.Frame()
	if calls != 0 || m.Active() {
		t.Fatalf("stopped momentum fired: calls=%d active=%v", calls, m.Active())
	}
}

func TestStartPreemptsRunningSequence(t *testing.T) {
	m, clock := newTestMomentum()
	first, second := 0, 0
	m.Start(5, func(float64) { first++ })
	clock.advance(16 * time.Millisecond)
	m.Frame()

	var d float64
	m.Start(1, func(v float64) { second++; d = v })
	clock.advance(16 * time.Millisecond)
	m.Frame()

	if first != 1 || second != 1 {
		t.Fatalf("first=%d second=%d", first, second)
	}
	if d != 16 {
		t.Fatalf("new sequence should restart distance, got %f", d)
	}
}

func TestZeroAndInvalidVelocityEndWithoutCallback(t *testing.T) {
	for _, v := range []float64{0, 0.0005, math.NaN(), math.Inf(1)} {
		m, clock := newTestMomentum()
		called := false
		m.Start(v, func(float64) { called = true })
		if !m.Active() {
			t.Fatalf("v=%v: expected a scheduled frame", v)
		}
		clock.advance(16 * time.Millisecond)
		m.Frame()
		if called || m.Active() {
			t.Fatalf("v=%v: called=%v active=%v", v, called, m.Active())
		}
	}
}
