package explain

import (
	"strings"
	"testing"

	"github.com/insightloop/governor/govern"
)

func TestSummarizeByReason(t *testing.T) {
	cases := []struct {
		name     string
		kind     string
		decision govern.Decision
		contains string
	}{
		{
			"ok_admitted",
			"content_hook",
			govern.Decision{EffectiveMode: govern.ModeAutopilot, Admitted: true, Reason: govern.ReasonOK},
			"ran in autopilot mode",
		},
		{
			"confidence_downgraded",
			"report_generation",
			govern.Decision{RequestedMode: govern.ModeAutopilot, EffectiveMode: govern.ModeManual, Admitted: true, Reason: govern.ReasonConfidenceDowngraded},
			"confidence was too low",
		},
		{
			"blocked",
			"content_hook",
			govern.Decision{Admitted: false, Reason: govern.ReasonValidationBlocked},
			"blocking issues",
		},
		{
			"warning_unacked",
			"content_hook",
			govern.Decision{Admitted: false, Reason: govern.ReasonWarningUnacknowledged},
			"acknowledgment",
		},
		{
			"incomplete",
			"content_hook",
			govern.Decision{Admitted: false, Reason: govern.ReasonValidationIncomplete},
			"waiting for content validation",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.kind, tc.decision)
			if !strings.Contains(got, tc.contains) {
				t.Fatalf("Summarize(%s, %s) = %q, want substring %q", tc.kind, tc.decision.Reason, got, tc.contains)
			}
		})
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	d := govern.Decision{EffectiveMode: govern.ModeCopilot, Admitted: true, Reason: govern.ReasonOK}
	first := Summarize("seo_optimization", d)
	for i := 0; i < 5; i++ {
		if got := Summarize("seo_optimization", d); got != first {
			t.Fatalf("Summarize not deterministic: %q vs %q", got, first)
		}
	}
}

func TestKindLabelFallback(t *testing.T) {
	cases := []struct {
		kind string
		want string
	}{
		{"content_hook", "Content hook"},
		{"custom_batch_export", "Custom batch export"},
		{"", "This action"},
	}
	for _, tc := range cases {
		if got := kindLabel(tc.kind); got != tc.want {
			t.Fatalf("kindLabel(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
