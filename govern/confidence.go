package govern

// DefaultConfidenceThreshold is used when a request context does not set
// a per-kind threshold.
const DefaultConfidenceThreshold = 0.70

// ApplyConfidence forces a requested mode down to manual when confidence
// falls below the threshold. The downgrade is hard: a low-confidence
// action never runs at copilot or autopilot, regardless of its static
// ceiling. Manual passes through untouched, so the function is
// idempotent.
func ApplyConfidence(requested Mode, confidence, threshold float64) Mode {
	if requested == ModeManual {
		return ModeManual
	}
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	if confidence < threshold {
		return ModeManual
	}
	return requested
}
