package session

import (
	"context"
	"time"

	"github.com/insightloop/governor/govern"
)

// Issue is one finding reported by the external content-validation
// service. The governance core treats issues as opaque; they are kept so
// explanations and CLIs can surface them.
type Issue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// State is the tracked validation state for one action id. This is the
// only mutable data in the whole module, and it lives here; the
// governance core never holds it.
type State struct {
	ActionID            string        `json:"action_id"`
	Status              govern.Status `json:"status"`
	WarningAcknowledged bool          `json:"warning_acknowledged"`
	Issues              []Issue       `json:"issues,omitempty"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// StateStore persists tracker state across processes. Implementations
// must tolerate concurrent calls; the tracker serializes writes per
// action id before they reach the store.
type StateStore interface {
	Save(ctx context.Context, st State) error
	Load(ctx context.Context, actionID string) (State, bool, error)
	LoadAll(ctx context.Context) ([]State, error)
	Delete(ctx context.Context, actionID string) error
}

// NoopStore satisfies StateStore without persisting anything.
type NoopStore struct{}

func (NoopStore) Save(ctx context.Context, st State) error { return nil }

func (NoopStore) Load(ctx context.Context, actionID string) (State, bool, error) {
	return State{}, false, nil
}

func (NoopStore) LoadAll(ctx context.Context) ([]State, error) { return nil, nil }

func (NoopStore) Delete(ctx context.Context, actionID string) error { return nil }
