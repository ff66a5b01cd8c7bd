package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, TimerState{}.Seconds())
	assert.Equal(t, 0, TimerState{Remaining: -3 * time.Second}.Seconds())
	assert.Equal(t, 30, TimerState{Remaining: 30 * time.Second}.Seconds())
	assert.Equal(t, 29, TimerState{Remaining: 29*time.Second + 500*time.Millisecond}.Seconds())
}

func TestNewRunningState(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Second)

	state := NewRunningState(start, end, 30*time.Second)
	assert.True(t, state.Running)
	assert.Equal(t, start, *state.StartTime)
	assert.Equal(t, end, *state.EndTime)
	assert.Equal(t, 30*time.Second, state.Remaining)
}
