// Package previous keeps the value seen on the prior frame.
package previous

// Value holds the last value passed to Set. The zero Value is empty.
type Value[T any] struct {
	v   T
	set bool
}

// Get returns the stored value and whether one has been stored yet.
func (p *Value[T]) Get() (T, bool) {
	return p.v, p.set
}

// Set stores v for retrieval on the next frame.
func (p *Value[T]) Set(v T) {
	p.v = v
	p.set = true
}
