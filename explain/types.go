package explain

import (
	"time"

	"github.com/insightloop/governor/govern"
)

type Actor string

const (
	ActorUser   Actor = "user"
	ActorSystem Actor = "system"
)

// StepActionInitiated is the step name of the current-action node. Every
// causal chain built here contains exactly one such node.
const StepActionInitiated = "Action Initiated"

// StepExecution is appended after the current-action node when the
// decision admitted the action.
const StepExecution = "Execution"

// CausalStep is one timestamped event in an action's causal chain.
type CausalStep struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"ts"`
	Actor     Actor     `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	// Current marks the current-action node. The builder owns this flag;
	// caller-supplied values are discarded.
	Current bool `json:"current,omitempty"`
}

// TechnicalDetail is the middle level of an explainable action: what was
// asked for, what was granted, and why.
type TechnicalDetail struct {
	RequestedMode govern.Mode   `json:"requested_mode"`
	EffectiveMode govern.Mode   `json:"effective_mode"`
	Reason        govern.Reason `json:"reason"`
	Confidence    float64       `json:"confidence"`
}

// ExplainableAction is the auditable record produced once per governance
// decision and execution attempt. Records are immutable after creation;
// repeated executions of the same action id accumulate history rather
// than overwrite.
type ExplainableAction struct {
	RecordID        string               `json:"record_id,omitempty"`
	ActionID        string               `json:"action_id"`
	Mode            govern.Mode          `json:"mode"`
	Admitted        bool                 `json:"admitted"`
	Confidence      float64              `json:"confidence"`
	RiskClass       govern.RiskLevel     `json:"risk_class"`
	Reversibility   govern.Reversibility `json:"reversibility"`
	UserSummary     string               `json:"user_summary"`
	TechnicalDetail TechnicalDetail      `json:"technical_detail"`
	CausalChain     []CausalStep         `json:"causal_chain"`
	CreatedAt       time.Time            `json:"created_at"`
}
