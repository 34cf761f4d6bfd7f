package service

import "time"

// SystemClock implements ports.Clock using wall-clock UTC time.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
