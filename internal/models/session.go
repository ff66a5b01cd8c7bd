package models

import "time"

// SessionOutcome records how a timer run ended.
type SessionOutcome string

const (
	OutcomeCompleted SessionOutcome = "completed" // ran down to zero
	OutcomeStopped   SessionOutcome = "stopped"   // stopped by the user
)

// Session is one finished timer run kept in history.
type Session struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Requested int64 // requested duration in seconds
	Elapsed   int64 // seconds actually run
	Outcome   SessionOutcome
}

type SessionStats struct {
	TotalSessions  int
	CompletedRuns  int
	TotalSeconds   int64
	AverageSeconds float64
}
