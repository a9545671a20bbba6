package govern

import "testing"

func TestCanProceed(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		acked  bool
		want   bool
	}{
		{"pending", StatusPending, false, false},
		{"pending_acked", StatusPending, true, false},
		{"analyzing", StatusAnalyzing, false, false},
		{"analyzing_acked", StatusAnalyzing, true, false},
		{"passed", StatusPassed, false, true},
		{"warning_unacked", StatusWarning, false, false},
		{"warning_acked", StatusWarning, true, true},
		{"blocked", StatusBlocked, false, false},
		{"blocked_acked", StatusBlocked, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanProceed(tc.status, tc.acked)
			if got != tc.want {
				t.Fatalf("CanProceed(%s, %v) = %v, want %v", tc.status, tc.acked, got, tc.want)
			}
		})
	}
}

func TestReasonFor(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		acked  bool
		want   Reason
	}{
		{"blocked", StatusBlocked, true, ReasonValidationBlocked},
		{"warning_unacked", StatusWarning, false, ReasonWarningUnacknowledged},
		{"warning_acked", StatusWarning, true, ReasonOK},
		{"passed", StatusPassed, false, ReasonOK},
		{"pending", StatusPending, false, ReasonValidationIncomplete},
		{"analyzing", StatusAnalyzing, true, ReasonValidationIncomplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ReasonFor(tc.status, tc.acked)
			if got != tc.want {
				t.Fatalf("ReasonFor(%s, %v) = %s, want %s", tc.status, tc.acked, got, tc.want)
			}
		})
	}
}

func TestReasonForAgreesWithCanProceed(t *testing.T) {
	statuses := []Status{StatusPending, StatusAnalyzing, StatusPassed, StatusWarning, StatusBlocked}
	for _, st := range statuses {
		for _, acked := range []bool{false, true} {
			proceed := CanProceed(st, acked)
			reason := ReasonFor(st, acked)
			if proceed != (reason == ReasonOK) {
				t.Fatalf("status=%s acked=%v: CanProceed=%v but ReasonFor=%s", st, acked, proceed, reason)
			}
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusAnalyzing, false},
		{StatusPassed, true},
		{StatusWarning, true},
		{StatusBlocked, true},
	}
	for _, tc := range cases {
		if got := tc.status.Terminal(); got != tc.want {
			t.Fatalf("%s.Terminal() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("nope"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	got, err := ParseStatus(" Passed ")
	if err != nil {
		t.Fatalf("ParseStatus error: %v", err)
	}
	if got != StatusPassed {
		t.Fatalf("ParseStatus = %s, want %s", got, StatusPassed)
	}
}
