// Package balls lays out the ball sprites for a scroll position.
//
// Only a window of sprites covering the visible height is ever produced. The
// window is shifted by position mod spacing so the string appears to scroll
// forever.
package balls

import "math"

// Sprite is one ball, positioned by the top edge of its bounding box.
type Sprite struct {
	Index int
	Y     float64
}

// Count is the number of sprites needed to tile height.
func Count(height, spacing float64) int {
	if height <= 0 || spacing <= 0 {
		return 0
	}
	return int(math.Ceil(height / spacing))
}

// Offset is position mod spacing, keeping the sign of position.
func Offset(position, spacing float64) float64 {
	return math.Mod(position, spacing)
}

// Sprites returns the sprites for indices -1 through Count, inclusive. The
// sprite at -1 covers the gap above the top edge while scrolling down.
func Sprites(position, height, spacing float64) []Sprite {
	n := Count(height, spacing)
	off := Offset(position, spacing)
	out := make([]Sprite, 0, n+2)
	for i := -1; i <= n; i++ {
		out = append(out, Sprite{Index: i, Y: off + float64(i)*spacing})
	}
	return out
}

// Bucket is the index of the spacing-sized band position falls in.
func Bucket(position, spacing float64) int {
	return int(math.Floor(position / spacing))
}

// Crossed reports whether a ball passed the threshold line between prev and cur.
func Crossed(prev, cur, spacing float64) bool {
	return Bucket(prev, spacing) != Bucket(cur, spacing)
}
