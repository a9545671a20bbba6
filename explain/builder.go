package explain

import (
	"sort"
	"time"

	"github.com/insightloop/governor/govern"
)

// Builder assembles ExplainableAction records. The clock is the only
// impure input; leave it nil for time.Now.
type Builder struct {
	Clock func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) now() time.Time {
	if b != nil && b.Clock != nil {
		return b.Clock()
	}
	return time.Now()
}

// Build produces the record for a completed decision. Denied decisions
// still yield a record: an explanation of why an action did not run is a
// valid explainable record, so Build never fails.
//
// The chain is prior events plus an "Action Initiated" node (the single
// current-action marker) plus, when admitted, an "Execution" node. Prior
// events are re-sorted by timestamp rather than trusting caller order;
// ties keep insertion order.
func (b *Builder) Build(action govern.ActionDescriptor, decision govern.Decision, prior []CausalStep) ExplainableAction {
	now := b.now()

	chain := make([]CausalStep, 0, len(prior)+2)
	for _, s := range prior {
		s.Current = false
		chain = append(chain, s)
	}
	chain = append(chain, CausalStep{
		Step:      StepActionInitiated,
		Timestamp: now,
		Actor:     ActorUser,
		Current:   true,
	})
	if decision.Admitted {
		chain = append(chain, CausalStep{
			Step:      StepExecution,
			Timestamp: now,
			Actor:     ActorSystem,
		})
	}
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].Timestamp.Before(chain[j].Timestamp)
	})

	return ExplainableAction{
		ActionID:      action.ID,
		Mode:          decision.EffectiveMode,
		Admitted:      decision.Admitted,
		Confidence:    action.Confidence,
		RiskClass:     action.RiskClass,
		Reversibility: action.Reversibility,
		UserSummary:   Summarize(action.Kind, decision),
		TechnicalDetail: TechnicalDetail{
			RequestedMode: decision.RequestedMode,
			EffectiveMode: decision.EffectiveMode,
			Reason:        decision.Reason,
			Confidence:    action.Confidence,
		},
		CausalChain: chain,
		CreatedAt:   now,
	}
}
