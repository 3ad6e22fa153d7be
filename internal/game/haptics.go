package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// vibrate asks the device for a short buzz. Platforms without a vibrator
// ignore the request.
func vibrate(d time.Duration) {
	if d <= 0 {
		return
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: 1,
	})
}
