// Package countdown holds the timer state and drives the one-second tick
// chain. The UI reads state through the change listener and calls Start,
// Stop and Reset; the store persists the start/end timestamps so an
// in-progress timer survives a restart.
package countdown

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/CHANDARA-code/countdown/internal/clock"
	"github.com/CHANDARA-code/countdown/internal/models"
	"github.com/CHANDARA-code/countdown/internal/storage"
)

// TickInterval is the spacing between remaining-time recomputations.
// Ticks are a chain of single-shot delayed callbacks, so consecutive ticks
// land roughly this far apart plus scheduler jitter.
const TickInterval = time.Second

// Store owns the single current TimerState. All mutation goes through its
// methods; reads get value copies.
type Store struct {
	mu    sync.Mutex
	kv    storage.KV
	clk   clock.Clock
	state models.TimerState

	// run numbers the tick chains. A scheduled tick belonging to an older
	// chain does nothing, so Start after Reset cannot double the ticking.
	run int

	requested time.Duration

	onChange func(models.TimerState)
	recorder func(*models.Session)
	logf     func(format string, v ...interface{})
}

func New(kv storage.KV, clk clock.Clock) *Store {
	return &Store{
		kv:   kv,
		clk:  clk,
		logf: log.Printf,
	}
}

// SetOnChange registers the listener notified with a copy of the state on
// every transition and tick.
func (s *Store) SetOnChange(fn func(models.TimerState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// SetRecorder registers the sink for finished runs (history).
func (s *Store) SetRecorder(fn func(*models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = fn
}

// State returns a copy of the current timer state.
func (s *Store) State() models.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start replaces the state with a running timer of the given duration,
// persists both timestamps and begins the tick chain. It always succeeds;
// a persistence failure is logged and the timer runs regardless.
func (s *Store) Start(d time.Duration) {
	now := s.clk.Now()
	end := now.Add(d)

	s.mu.Lock()
	s.state = models.NewRunningState(now, end, d)
	s.requested = d
	s.run++
	id := s.run
	s.mu.Unlock()

	s.persist(now, end)
	s.notify()
	s.schedule(id)
}

// Stop clears the running flag and keeps the timestamps and the last
// computed remaining value. An already-scheduled tick is not cancelled; it
// observes the cleared flag and declines to reschedule.
func (s *Store) Stop() {
	now := s.clk.Now()

	s.mu.Lock()
	if !s.state.Running {
		s.mu.Unlock()
		return
	}
	s.state.Running = false
	st := s.state
	requested := s.requested
	s.mu.Unlock()

	// Best-effort rewrite of the existing timestamps.
	if st.StartTime != nil && st.EndTime != nil {
		s.persist(*st.StartTime, *st.EndTime)
		s.record(&models.Session{
			StartTime: *st.StartTime,
			EndTime:   now,
			Requested: int64(requested / time.Second),
			Elapsed:   int64(now.Sub(*st.StartTime) / time.Second),
			Outcome:   models.OutcomeStopped,
		})
	}
	s.notify()
}

// Reset replaces the state with the default and clears the persisted
// timestamps.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = models.TimerState{}
	s.requested = 0
	s.mu.Unlock()

	s.clear()
	s.notify()
}

// Restore rebuilds state from the persisted timestamps at startup. Both
// keys absent, a malformed value or an end time already in the past all
// yield the default state; otherwise the timer resumes running with the
// recomputed remaining time.
func (s *Store) Restore() error {
	startRaw, err := s.kv.Get(storage.KeyStartTime)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	endRaw, err := s.kv.Get(storage.KeyEndTime)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	start, perr := time.Parse(time.RFC3339, startRaw)
	end, perr2 := time.Parse(time.RFC3339, endRaw)
	if perr != nil || perr2 != nil {
		s.logf("countdown: discarding malformed persisted timestamps")
		s.clear()
		return nil
	}

	remaining := end.Sub(s.clk.Now())
	if remaining < 0 {
		// Expired while the app was away.
		s.clear()
		return nil
	}

	s.mu.Lock()
	s.state = models.NewRunningState(start, end, remaining)
	s.requested = end.Sub(start)
	s.run++
	id := s.run
	s.mu.Unlock()

	s.notify()
	s.schedule(id)
	return nil
}

func (s *Store) schedule(id int) {
	s.clk.AfterFunc(TickInterval, func() {
		s.tick(id)
	})
}

// tick is one recomputation step. Remaining time always derives from the
// persisted end timestamp, never from counting ticks, so jitter cannot
// accumulate drift.
func (s *Store) tick(id int) {
	s.mu.Lock()
	if id != s.run || !s.state.Running {
		s.mu.Unlock()
		return
	}

	remaining := s.state.EndTime.Sub(s.clk.Now())
	if remaining < 0 {
		// Natural expiry.
		st := s.state
		requested := s.requested
		s.state = models.TimerState{}
		s.mu.Unlock()

		s.clear()
		s.record(&models.Session{
			StartTime: *st.StartTime,
			EndTime:   *st.EndTime,
			Requested: int64(requested / time.Second),
			Elapsed:   int64(requested / time.Second),
			Outcome:   models.OutcomeCompleted,
		})
		s.notify()
		return
	}

	s.state.Remaining = remaining
	s.mu.Unlock()

	s.notify()
	s.schedule(id)
}

func (s *Store) persist(start, end time.Time) {
	if err := s.kv.Set(storage.KeyStartTime, start.Format(time.RFC3339)); err != nil {
		s.logf("countdown: persist start time: %v", err)
	}
	if err := s.kv.Set(storage.KeyEndTime, end.Format(time.RFC3339)); err != nil {
		s.logf("countdown: persist end time: %v", err)
	}
}

func (s *Store) clear() {
	if err := s.kv.Remove(storage.KeyStartTime); err != nil {
		s.logf("countdown: clear start time: %v", err)
	}
	if err := s.kv.Remove(storage.KeyEndTime); err != nil {
		s.logf("countdown: clear end time: %v", err)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fn := s.onChange
	st := s.state
	s.mu.Unlock()

	if fn != nil {
		fn(st)
	}
}

func (s *Store) record(session *models.Session) {
	s.mu.Lock()
	fn := s.recorder
	s.mu.Unlock()

	if fn == nil {
		return
	}
	session.ID = uuid.NewString()
	fn(session)
}
