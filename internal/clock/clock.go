package clock

import "time"

// Timer is a pending AfterFunc callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock provides time operations. The indirection exists so tests can
// simulate the one-second tick chain without waiting on real delays.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// System is the default Clock backed by the time package.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
