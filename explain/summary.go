package explain

import (
	"fmt"
	"strings"

	"github.com/insightloop/governor/govern"
)

// Summarize renders the user-facing one-liner for a decision. It is a
// pure template table keyed on (kind, reason); no model inference
// happens here; richer prose is a collaborator's job.
func Summarize(kind string, decision govern.Decision) string {
	label := kindLabel(kind)
	switch decision.Reason {
	case govern.ReasonOK:
		if decision.Admitted {
			return fmt.Sprintf("%s ran in %s mode.", label, decision.EffectiveMode)
		}
		return fmt.Sprintf("%s did not run.", label)
	case govern.ReasonConfidenceDowngraded:
		return fmt.Sprintf("%s ran in manual mode: confidence was too low for %s.", label, decision.RequestedMode)
	case govern.ReasonValidationBlocked:
		return fmt.Sprintf("%s was stopped: content validation found blocking issues.", label)
	case govern.ReasonWarningUnacknowledged:
		return fmt.Sprintf("%s is waiting: validation warnings need your acknowledgment.", label)
	case govern.ReasonValidationIncomplete:
		return fmt.Sprintf("%s is waiting for content validation to finish.", label)
	default:
		return fmt.Sprintf("%s finished with outcome %q.", label, decision.Reason)
	}
}

var kindLabels = map[string]string{
	"content_hook":      "Content hook",
	"report_generation": "Report generation",
	"seo_optimization":  "SEO optimization",
	"pr_outreach":       "PR outreach",
	"investor_update":   "Investor update",
}

func kindLabel(kind string) string {
	if l, ok := kindLabels[strings.TrimSpace(kind)]; ok {
		return l
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return "This action"
	}
	// snake_case tag -> sentence-ish label.
	label := strings.ReplaceAll(kind, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
