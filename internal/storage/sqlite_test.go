package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHANDARA-code/countdown/internal/models"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "countdown.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKVRoundTrip(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Get(KeyStartTime)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.Set(KeyStartTime, "2024-06-01T12:00:00Z"))
	value, err := db.Get(KeyStartTime)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T12:00:00Z", value)

	// Set overwrites.
	require.NoError(t, db.Set(KeyStartTime, "2024-06-01T13:00:00Z"))
	value, err = db.Get(KeyStartTime)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T13:00:00Z", value)

	require.NoError(t, db.Remove(KeyStartTime))
	_, err = db.Get(KeyStartTime)
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is not an error.
	require.NoError(t, db.Remove(KeyStartTime))
}

func TestSessionHistory(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := &models.Session{
		ID:        "a",
		StartTime: base,
		EndTime:   base.Add(30 * time.Second),
		Requested: 30,
		Elapsed:   30,
		Outcome:   models.OutcomeCompleted,
	}
	second := &models.Session{
		ID:        "b",
		StartTime: base.Add(time.Minute),
		EndTime:   base.Add(time.Minute + 10*time.Second),
		Requested: 30,
		Elapsed:   10,
		Outcome:   models.OutcomeStopped,
	}
	require.NoError(t, db.InsertSession(first))
	require.NoError(t, db.InsertSession(second))

	sessions, err := db.ListSessions(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// Most recent first.
	assert.Equal(t, "b", sessions[0].ID)
	assert.Equal(t, "a", sessions[1].ID)
	assert.Equal(t, models.OutcomeCompleted, sessions[1].Outcome)
	assert.True(t, sessions[1].StartTime.Equal(base))

	sessions, err = db.ListSessions(1)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionStats(t *testing.T) {
	db := openTestDB(t)

	stats, err := db.GetSessionStats(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, int64(0), stats.TotalSeconds)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.InsertSession(&models.Session{
		ID: "a", StartTime: base, EndTime: base.Add(30 * time.Second),
		Requested: 30, Elapsed: 30, Outcome: models.OutcomeCompleted,
	}))
	require.NoError(t, db.InsertSession(&models.Session{
		ID: "b", StartTime: base.Add(time.Minute), EndTime: base.Add(70 * time.Second),
		Requested: 30, Elapsed: 10, Outcome: models.OutcomeStopped,
	}))

	stats, err = db.GetSessionStats(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 1, stats.CompletedRuns)
	assert.Equal(t, int64(40), stats.TotalSeconds)
	assert.InDelta(t, 20.0, stats.AverageSeconds, 0.001)

	// Cutoff excludes the first session.
	stats, err = db.GetSessionStats(base.Add(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSessions)
}
