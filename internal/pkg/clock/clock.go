// Package clock lets save timestamps and session expiry be pinned in tests.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the wall clock
type Real struct{}

// Now returns the current system time
func (*Real) Now() time.Time {
	return time.Now()
}

// New returns a wall clock
func New() Clock {
	return &Real{}
}

// Fixed always reports At
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.At
}
