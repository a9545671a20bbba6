package govern

// Decide combines the mode ladder, confidence gate and validation gate
// into one admit/deny/downgrade decision.
//
// Order matters: the requested mode is first clamped to the action's
// static ceiling, then the confidence gate may force it to manual, and
// only then is admission checked against validation state. Denials are
// ordinary values (Admitted=false plus a Reason), never errors; a
// freshly registered, not-yet-validated action being denied is the
// routine case, not an exceptional one. The only error surface is
// *InvalidModeError from the ladder.
//
// Given identical inputs the output is identical: no hidden state, no
// randomness, no clock.
func Decide(action ActionDescriptor, ctx RequestContext) (Decision, error) {
	m1, err := Clamp(ctx.RequestedMode, action.ModeCeiling)
	if err != nil {
		return Decision{}, err
	}
	m2 := ApplyConfidence(m1, action.Confidence, ctx.ConfidenceThreshold)

	d := Decision{
		RequestedMode: ctx.RequestedMode,
		EffectiveMode: m2,
		Admitted:      CanProceed(ctx.ValidationStatus, ctx.WarningAcknowledged),
	}

	switch {
	case !d.Admitted:
		// EffectiveMode is still populated for display purposes.
		d.Reason = ReasonFor(ctx.ValidationStatus, ctx.WarningAcknowledged)
	case m2 != m1:
		d.Reason = ReasonConfidenceDowngraded
	default:
		d.Reason = ReasonOK
	}
	return d, nil
}
