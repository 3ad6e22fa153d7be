// Package sound plays the click heard when a ball crosses the line.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ball-string/internal/config"
)

// Player plays clicks through the system speaker. A nil or disabled Player
// is silent.
type Player struct {
	rate   beep.SampleRate
	volume float64
}

// New initializes the speaker. It returns a disabled player when sound is off.
func New(cfg config.FeedbackConfig) (*Player, error) {
	if !cfg.Sound || cfg.Volume == 0 {
		return nil, nil
	}
	rate := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{rate: rate, volume: cfg.Volume}, nil
}

// Click queues one click on the speaker.
func (p *Player) Click() {
	if p == nil {
		return
	}
	speaker.Play(Click(p.rate, config.ClickFrequency, config.ClickDuration, p.volume))
}

// Click returns a sine tone of length d with a quadratic fade out.
func Click(rate beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := volume * env * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(rate))
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
