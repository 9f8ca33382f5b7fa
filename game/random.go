package game

import (
	"fmt"
	"time"
)

// Random is a linear congruential generator. The same seed yields the same
// sequence on every platform, which keeps simulated games reproducible.
type Random struct {
	n uint32
}

// NewRandom seeds the generator. A negative seed requests a time-derived,
// non-reproducible sequence.
func NewRandom(seed int) *Random {
	if seed < 0 {
		return &Random{n: uint32(time.Now().UnixNano())}
	}
	return &Random{n: uint32(seed)}
}

// Next returns a number in [0, count). Panics if count <= 0.
func (r *Random) Next(count int) int {
	if count <= 0 {
		panic(fmt.Sprintf("random range must be positive, got %d", count))
	}
	r.n = (r.n*1103515245 + 12345) & 0x7fffffff
	d := float64(r.n) / float64(0x80000000)
	return int(float64(count) * d)
}

// Clone returns an independent generator at the same point of the sequence.
func (r *Random) Clone() *Random {
	c := *r
	return &c
}
