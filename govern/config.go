package govern

import "strings"

type Config struct {
	Confidence ConfidenceConfig
}

type ConfidenceConfig struct {
	DefaultThreshold float64
	// KindThresholds overrides the default per action kind.
	KindThresholds map[string]float64
}

// ThresholdFor resolves the confidence threshold for an action kind.
func (c Config) ThresholdFor(kind string) float64 {
	kind = strings.TrimSpace(kind)
	if kind != "" {
		if t, ok := c.Confidence.KindThresholds[kind]; ok && t > 0 {
			return t
		}
	}
	if c.Confidence.DefaultThreshold > 0 {
		return c.Confidence.DefaultThreshold
	}
	return DefaultConfidenceThreshold
}
