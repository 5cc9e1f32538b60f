// internal/app/reporting/model.go
package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the load lifecycle of a Model.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Model owns the dashboard's load lifecycle: Idle → Loading → {Loaded,
// Failed}, re-entering Loading on every new attempt. A failed load keeps the
// previously computed view so the dashboard never flashes empty during a
// transient re-fetch. Overlapping Load calls are serialized; the second
// caller waits and then performs a fresh load of its own.
type Model struct {
	loader EntityLoader
	limit  int
	log    *zap.Logger
	now    func() time.Time

	loadMu sync.Mutex // serializes load attempts

	mu      sync.RWMutex // guards the fields below
	state   State
	snap    *Snapshot
	view    View
	hasView bool
	lastErr error
}

// NewModel creates a Model in the Idle state. upcomingLimit < 1 falls back
// to DefaultUpcomingLimit.
func NewModel(loader EntityLoader, upcomingLimit int, logger *zap.Logger) *Model {
	if upcomingLimit < 1 {
		upcomingLimit = DefaultUpcomingLimit
	}
	return &Model{
		loader: loader,
		limit:  upcomingLimit,
		log:    logger,
		now:    time.Now,
	}
}

// Load performs one load attempt: fetch all five collections behind the
// barrier, then recompute every derived view from the fresh snapshot. On
// failure the model transitions to Failed, records the error, and leaves any
// previous view in place.
func (m *Model) Load(ctx context.Context) error {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	attempt := uuid.NewString()

	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	m.log.Debug("dashboard load started", zap.String("attempt", attempt))

	snap, err := Load(ctx, m.loader)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateFailed
		m.lastErr = err
		m.log.Warn("dashboard load failed",
			zap.String("attempt", attempt),
			zap.Bool("previous_view_retained", m.hasView),
			zap.Error(err))
		return err
	}

	m.snap = snap
	m.view = BuildView(snap, m.now(), m.limit)
	m.hasView = true
	m.state = StateLoaded
	m.lastErr = nil

	m.log.Info("dashboard loaded",
		zap.String("attempt", attempt),
		zap.Int("courses", m.view.Counts.Courses),
		zap.Int("registrations", m.view.Counts.Registrations),
		zap.Int("instructors", m.view.Counts.Instructors),
		zap.Int("participants", m.view.Counts.Participants),
		zap.Int("rooms", m.view.Counts.Rooms))
	return nil
}

// State returns the current lifecycle state.
func (m *Model) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// View returns the most recently computed view. ok is false until the first
// successful load; after that a view remains available even through failed
// reloads.
func (m *Model) View() (view View, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view, m.hasView
}

// ViewWithLimit is View with the upcoming selection recomputed for a
// caller-chosen limit. The rest of the view is shared with the stored one.
func (m *Model) ViewWithLimit(limit int) (view View, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasView {
		return View{}, false
	}
	if limit == m.limit || m.snap == nil {
		return m.view, true
	}
	view = m.view
	view.Upcoming = SelectUpcoming(m.snap.Courses, view.AsOf, limit)
	return view, true
}

// Err returns the error from the most recent load attempt, or nil if it
// succeeded (or none has run).
func (m *Model) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}
