package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/insightloop/governor/govern"
)

// Tracker owns the validation lifecycle and acknowledgment flag per
// action id. All mutations for an id are serialized under one lock, so a
// stale CanProceed snapshot can never race a fresher validation result
// inside the tracker. The clock is injectable for tests.
type Tracker struct {
	mu     sync.RWMutex
	states map[string]State

	store StateStore
	clock func() time.Time
}

func NewTracker(store StateStore) *Tracker {
	if store == nil {
		store = NoopStore{}
	}
	return &Tracker{
		states: make(map[string]State),
		store:  store,
		clock:  time.Now,
	}
}

// WithClock overrides the clock for testing.
func (t *Tracker) WithClock(clock func() time.Time) *Tracker {
	t.clock = clock
	return t
}

// Restore loads persisted states into memory. Call once at startup.
func (t *Tracker) Restore(ctx context.Context) error {
	states, err := t.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, st := range states {
		t.states[st.ActionID] = st
	}
	return nil
}

// Register creates a pending state for a new action id.
func (t *Tracker) Register(ctx context.Context, actionID string) (State, error) {
	actionID = strings.TrimSpace(actionID)
	if actionID == "" {
		return State{}, fmt.Errorf("missing action id")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.states[actionID]; ok {
		return State{}, fmt.Errorf("action %q is already registered", actionID)
	}
	st := State{
		ActionID:  actionID,
		Status:    govern.StatusPending,
		UpdatedAt: t.clock(),
	}
	t.states[actionID] = st
	return st, t.store.Save(ctx, st)
}

// BeginAnalysis marks a pending action as analyzing.
func (t *Tracker) BeginAnalysis(ctx context.Context, actionID string) (State, error) {
	return t.transition(ctx, actionID, func(st *State) error {
		if st.Status != govern.StatusPending {
			return fmt.Errorf("cannot begin analysis from %q", st.Status)
		}
		st.Status = govern.StatusAnalyzing
		return nil
	})
}

// Complete records the terminal outcome of a validation run.
func (t *Tracker) Complete(ctx context.Context, actionID string, outcome govern.Status, issues []Issue) (State, error) {
	if !outcome.Terminal() {
		return State{}, fmt.Errorf("%q is not a terminal validation outcome", outcome)
	}
	return t.transition(ctx, actionID, func(st *State) error {
		if st.Status != govern.StatusAnalyzing {
			return fmt.Errorf("cannot complete validation from %q", st.Status)
		}
		st.Status = outcome
		st.Issues = issues
		return nil
	})
}

// Reset returns an action to pending after its subject content changed.
// The acknowledgment is cleared: it referred to issues that no longer
// describe the content.
func (t *Tracker) Reset(ctx context.Context, actionID string) (State, error) {
	return t.transition(ctx, actionID, func(st *State) error {
		st.Status = govern.StatusPending
		st.WarningAcknowledged = false
		st.Issues = nil
		return nil
	})
}

// Acknowledge sets the warning acknowledgment flag. Only meaningful in
// the warning state.
func (t *Tracker) Acknowledge(ctx context.Context, actionID string, acked bool) (State, error) {
	return t.transition(ctx, actionID, func(st *State) error {
		if st.Status != govern.StatusWarning {
			return fmt.Errorf("cannot acknowledge in state %q", st.Status)
		}
		st.WarningAcknowledged = acked
		return nil
	})
}

// Snapshot returns the current state for an action id.
func (t *Tracker) Snapshot(actionID string) (State, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st, ok := t.states[strings.TrimSpace(actionID)]
	return st, ok
}

// Context assembles the governor's request context from tracked state.
func (t *Tracker) Context(actionID string, requested govern.Mode, threshold float64) (govern.RequestContext, error) {
	st, ok := t.Snapshot(actionID)
	if !ok {
		return govern.RequestContext{}, fmt.Errorf("action %q is not registered", actionID)
	}
	return govern.RequestContext{
		RequestedMode:       requested,
		ValidationStatus:    st.Status,
		WarningAcknowledged: st.WarningAcknowledged,
		ConfidenceThreshold: threshold,
	}, nil
}

func (t *Tracker) transition(ctx context.Context, actionID string, mutate func(*State) error) (State, error) {
	actionID = strings.TrimSpace(actionID)
	if actionID == "" {
		return State{}, fmt.Errorf("missing action id")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[actionID]
	if !ok {
		return State{}, fmt.Errorf("action %q is not registered", actionID)
	}
	if err := mutate(&st); err != nil {
		return State{}, err
	}
	st.UpdatedAt = t.clock()
	t.states[actionID] = st
	return st, t.store.Save(ctx, st)
}
