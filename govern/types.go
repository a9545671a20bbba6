package govern

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type Reversibility string

const (
	FullyReversible     Reversibility = "fully_reversible"
	PartiallyReversible Reversibility = "partially_reversible"
	Irreversible        Reversibility = "irreversible"
)

// Reason is the single outcome vocabulary shared by the governor and any
// UI/API boundary. The string values are rendered and persisted directly,
// so they must stay stable.
type Reason string

const (
	ReasonOK                    Reason = "ok"
	ReasonConfidenceDowngraded  Reason = "confidence_downgraded"
	ReasonValidationBlocked     Reason = "validation_blocked"
	ReasonWarningUnacknowledged Reason = "warning_unacknowledged"
	ReasonValidationIncomplete  Reason = "validation_incomplete"
)

// Denial reports whether the reason denies admission (as opposed to ok or
// a non-blocking downgrade note).
func (r Reason) Denial() bool {
	switch r {
	case ReasonValidationBlocked, ReasonWarningUnacknowledged, ReasonValidationIncomplete:
		return true
	}
	return false
}

// ActionDescriptor is the immutable description of a requestable action.
// ModeCeiling is fixed at action-definition time; RiskLevel and
// Reversibility never block on their own but are surfaced in explanations.
type ActionDescriptor struct {
	ID            string        `json:"id" yaml:"id"`
	Kind          string        `json:"kind" yaml:"kind"`
	ModeCeiling   Mode          `json:"mode_ceiling" yaml:"mode_ceiling"`
	RiskClass     RiskLevel     `json:"risk_class" yaml:"risk_class"`
	Reversibility Reversibility `json:"reversibility" yaml:"reversibility"`
	Confidence    float64       `json:"confidence" yaml:"confidence"`
}

// RequestContext carries the per-call mutable inputs. The caller owns the
// underlying state (validation status, acknowledgment); the governor only
// reads the snapshot handed to Decide.
type RequestContext struct {
	RequestedMode       Mode
	ValidationStatus    Status
	WarningAcknowledged bool
	ConfidenceThreshold float64
}

// Decision is the governor's output. RequestedMode is echoed so that
// explanation records can show what the caller asked for next to what was
// granted.
type Decision struct {
	RequestedMode Mode   `json:"requested_mode"`
	EffectiveMode Mode   `json:"effective_mode"`
	Admitted      bool   `json:"admitted"`
	Reason        Reason `json:"reason"`
}
