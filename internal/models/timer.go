package models

import (
	"time"
)

// TimerState is the current countdown state. The zero value is the default
// (idle) state. StartTime and EndTime are either both set or both nil;
// Running implies both are set.
type TimerState struct {
	StartTime *time.Time
	EndTime   *time.Time
	Remaining time.Duration
	Running   bool
}

// NewRunningState builds the state for a freshly started or restored timer.
func NewRunningState(start, end time.Time, remaining time.Duration) TimerState {
	return TimerState{
		StartTime: &start,
		EndTime:   &end,
		Remaining: remaining,
		Running:   true,
	}
}

// Seconds returns the remaining whole seconds for display, never negative.
func (s TimerState) Seconds() int {
	if s.Remaining <= 0 {
		return 0
	}
	return int(s.Remaining / time.Second)
}
