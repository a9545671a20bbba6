package govern

import (
	"fmt"
	"strings"
)

// Status is the validation state of an action's subject content.
//
// Lifecycle: pending -> analyzing -> {passed | warning | blocked}. Any
// state resets to pending when the caller signals that the subject
// changed; the gate itself never observes content.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAnalyzing Status = "analyzing"
	StatusPassed    Status = "passed"
	StatusWarning   Status = "warning"
	StatusBlocked   Status = "blocked"
)

var knownStatus = map[Status]bool{
	StatusPending:   true,
	StatusAnalyzing: true,
	StatusPassed:    true,
	StatusWarning:   true,
	StatusBlocked:   true,
}

// Terminal reports whether s is a completed validation outcome.
func (s Status) Terminal() bool {
	return s == StatusPassed || s == StatusWarning || s == StatusBlocked
}

// ParseStatus normalizes an untrusted string into a Status.
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !knownStatus[s] {
		return "", fmt.Errorf("invalid validation status: %q", v)
	}
	return s, nil
}

// CanProceed decides whether an action may run under the given validation
// state. blocked is a hard stop; warning passes only once acknowledged;
// pending and analyzing mean "not yet validated" and the caller should
// wait or re-poll.
func CanProceed(status Status, warningAcknowledged bool) bool {
	switch status {
	case StatusPassed:
		return true
	case StatusWarning:
		return warningAcknowledged
	default:
		return false
	}
}

// ReasonFor maps a validation state to its denial reason. ReasonOK means
// the state does not deny.
func ReasonFor(status Status, warningAcknowledged bool) Reason {
	switch status {
	case StatusBlocked:
		return ReasonValidationBlocked
	case StatusWarning:
		if warningAcknowledged {
			return ReasonOK
		}
		return ReasonWarningUnacknowledged
	case StatusPassed:
		return ReasonOK
	default:
		return ReasonValidationIncomplete
	}
}
