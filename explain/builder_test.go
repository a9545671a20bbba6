package explain

import (
	"testing"
	"time"

	"github.com/insightloop/governor/govern"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleAction() govern.ActionDescriptor {
	return govern.ActionDescriptor{
		ID:            "act_1",
		Kind:          "content_hook",
		ModeCeiling:   govern.ModeAutopilot,
		RiskClass:     govern.RiskLow,
		Reversibility: govern.FullyReversible,
		Confidence:    0.9,
	}
}

func admittedDecision() govern.Decision {
	return govern.Decision{
		RequestedMode: govern.ModeAutopilot,
		EffectiveMode: govern.ModeAutopilot,
		Admitted:      true,
		Reason:        govern.ReasonOK,
	}
}

func TestBuildAdmittedChain(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	b := &Builder{Clock: fixedClock(now)}

	prior := []CausalStep{
		{Step: "Draft Created", Timestamp: now.Add(-2 * time.Hour), Actor: ActorUser},
		{Step: "Validation Passed", Timestamp: now.Add(-time.Hour), Actor: ActorSystem},
	}
	rec := b.Build(sampleAction(), admittedDecision(), prior)

	if len(rec.CausalChain) != 4 {
		t.Fatalf("expected 4 chain steps, got %d", len(rec.CausalChain))
	}
	if rec.CausalChain[2].Step != StepActionInitiated {
		t.Fatalf("expected %q at position 2, got %q", StepActionInitiated, rec.CausalChain[2].Step)
	}
	if rec.CausalChain[3].Step != StepExecution {
		t.Fatalf("expected %q last, got %q", StepExecution, rec.CausalChain[3].Step)
	}
	if rec.CausalChain[3].Actor != ActorSystem {
		t.Fatalf("execution step actor = %s, want system", rec.CausalChain[3].Actor)
	}
	if !rec.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt = %v, want %v", rec.CreatedAt, now)
	}
}

func TestBuildDeniedChainHasNoExecution(t *testing.T) {
	b := &Builder{Clock: fixedClock(time.Unix(1_700_000_000, 0))}
	d := govern.Decision{
		RequestedMode: govern.ModeAutopilot,
		EffectiveMode: govern.ModeAutopilot,
		Admitted:      false,
		Reason:        govern.ReasonValidationBlocked,
	}
	rec := b.Build(sampleAction(), d, nil)
	if len(rec.CausalChain) != 1 {
		t.Fatalf("expected 1 chain step, got %d", len(rec.CausalChain))
	}
	if rec.CausalChain[0].Step != StepActionInitiated {
		t.Fatalf("expected only %q, got %q", StepActionInitiated, rec.CausalChain[0].Step)
	}
	if rec.Admitted {
		t.Fatal("expected Admitted=false on record")
	}
	if rec.UserSummary == "" {
		t.Fatal("denied decision must still carry a user summary")
	}
}

func TestBuildResortsOutOfOrderPrior(t *testing.T) {
	now := time.Unix(2_000_000_000, 0).UTC()
	b := &Builder{Clock: fixedClock(now)}

	prior := []CausalStep{
		{Step: "Third", Timestamp: now.Add(-time.Minute), Actor: ActorSystem},
		{Step: "First", Timestamp: now.Add(-time.Hour), Actor: ActorUser},
		{Step: "Second", Timestamp: now.Add(-30 * time.Minute), Actor: ActorSystem},
	}
	rec := b.Build(sampleAction(), admittedDecision(), prior)

	for i := 1; i < len(rec.CausalChain); i++ {
		if rec.CausalChain[i].Timestamp.Before(rec.CausalChain[i-1].Timestamp) {
			t.Fatalf("chain not sorted at %d: %v before %v", i, rec.CausalChain[i].Timestamp, rec.CausalChain[i-1].Timestamp)
		}
	}
	order := []string{"First", "Second", "Third"}
	for i, want := range order {
		if rec.CausalChain[i].Step != want {
			t.Fatalf("position %d = %q, want %q", i, rec.CausalChain[i].Step, want)
		}
	}
}

func TestBuildStableOnTimestampTies(t *testing.T) {
	now := time.Unix(3_000_000_000, 0).UTC()
	b := &Builder{Clock: fixedClock(now)}

	ts := now.Add(-time.Hour)
	prior := []CausalStep{
		{Step: "A", Timestamp: ts, Actor: ActorSystem},
		{Step: "B", Timestamp: ts, Actor: ActorSystem},
		{Step: "C", Timestamp: ts, Actor: ActorSystem},
	}
	rec := b.Build(sampleAction(), admittedDecision(), prior)
	for i, want := range []string{"A", "B", "C"} {
		if rec.CausalChain[i].Step != want {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, rec.CausalChain[i].Step, want)
		}
	}
}

func TestBuildExactlyOneCurrentMarker(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)
	b := &Builder{Clock: fixedClock(now)}

	// Caller tries to smuggle in its own current markers; the builder
	// owns the flag.
	prior := []CausalStep{
		{Step: "Stale Current", Timestamp: now.Add(-time.Hour), Actor: ActorUser, Current: true},
		{Step: "Another", Timestamp: now.Add(-time.Minute), Actor: ActorSystem, Current: true},
	}
	rec := b.Build(sampleAction(), admittedDecision(), prior)

	count := 0
	for _, s := range rec.CausalChain {
		if s.Current {
			count++
			if s.Step != StepActionInitiated {
				t.Fatalf("current marker on %q, want %q", s.Step, StepActionInitiated)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 current marker, got %d", count)
	}
}

func TestBuildTechnicalDetail(t *testing.T) {
	b := &Builder{Clock: fixedClock(time.Unix(1_234_567_890, 0))}
	d := govern.Decision{
		RequestedMode: govern.ModeAutopilot,
		EffectiveMode: govern.ModeManual,
		Admitted:      true,
		Reason:        govern.ReasonConfidenceDowngraded,
	}
	action := sampleAction()
	action.Confidence = 0.4

	rec := b.Build(action, d, nil)
	td := rec.TechnicalDetail
	if td.RequestedMode != govern.ModeAutopilot || td.EffectiveMode != govern.ModeManual {
		t.Fatalf("unexpected technical detail modes: %+v", td)
	}
	if td.Reason != govern.ReasonConfidenceDowngraded {
		t.Fatalf("technical detail reason = %s", td.Reason)
	}
	if td.Confidence != 0.4 {
		t.Fatalf("technical detail confidence = %v", td.Confidence)
	}
	if rec.Mode != govern.ModeManual {
		t.Fatalf("record mode = %s, want manual", rec.Mode)
	}
	if rec.RiskClass != govern.RiskLow || rec.Reversibility != govern.FullyReversible {
		t.Fatalf("risk/reversibility not carried: %+v", rec)
	}
}

func TestBuildDefaultClock(t *testing.T) {
	before := time.Now()
	rec := NewBuilder().Build(sampleAction(), admittedDecision(), nil)
	after := time.Now()
	if rec.CreatedAt.Before(before) || rec.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v outside [%v, %v]", rec.CreatedAt, before, after)
	}
}
