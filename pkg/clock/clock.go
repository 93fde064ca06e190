package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts wall-clock reads so lifecycle computations (trial windows,
// package expiry, reset-token age) stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewReal returns the wall-clock implementation used in production.
func NewReal() Clock { return realClock{} }

// Fixed is a Clock pinned to a settable instant. Test helper.
type Fixed struct {
	At time.Time
}

func (f *Fixed) Now() time.Time { return f.At }

// Advance moves the fixed clock forward.
func (f *Fixed) Advance(d time.Duration) { f.At = f.At.Add(d) }

var Module = fx.Options(
	fx.Provide(NewReal),
)
