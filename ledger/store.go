package ledger

import (
	"context"

	"github.com/insightloop/governor/explain"
)

// Store is the append-only history of explainable-action records. An
// action id accumulates one record per decision/execution attempt;
// nothing is ever overwritten.
type Store interface {
	Append(ctx context.Context, rec explain.ExplainableAction) (string, error)
	Get(ctx context.Context, recordID string) (explain.ExplainableAction, bool, error)
	ListByAction(ctx context.Context, actionID string, limit int) ([]explain.ExplainableAction, error)
	Recent(ctx context.Context, limit int) ([]explain.ExplainableAction, error)
}

// Sink receives a copy of every appended record, e.g. for audit tailing.
type Sink interface {
	Emit(ctx context.Context, rec explain.ExplainableAction) error
	Close() error
}

// NoopStore satisfies Store without keeping anything. Useful when a
// caller only wants the decision, not the history.
type NoopStore struct{}

func (NoopStore) Append(ctx context.Context, rec explain.ExplainableAction) (string, error) {
	return "", nil
}

func (NoopStore) Get(ctx context.Context, recordID string) (explain.ExplainableAction, bool, error) {
	return explain.ExplainableAction{}, false, nil
}

func (NoopStore) ListByAction(ctx context.Context, actionID string, limit int) ([]explain.ExplainableAction, error) {
	return nil, nil
}

func (NoopStore) Recent(ctx context.Context, limit int) ([]explain.ExplainableAction, error) {
	return nil, nil
}
