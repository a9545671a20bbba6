package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/insightloop/governor/govern"
	"gopkg.in/yaml.v3"
)

// loadActionFile reads an ActionDescriptor from a YAML file and
// normalizes its enum fields. A missing id gets a generated one so ad hoc
// descriptors can be decided without bookkeeping.
func loadActionFile(path string) (govern.ActionDescriptor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return govern.ActionDescriptor{}, err
	}

	var action govern.ActionDescriptor
	if err := yaml.Unmarshal(b, &action); err != nil {
		return govern.ActionDescriptor{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return normalizeAction(action)
}

func normalizeAction(action govern.ActionDescriptor) (govern.ActionDescriptor, error) {
	if strings.TrimSpace(action.ID) == "" {
		action.ID = "act_" + uuid.NewString()
	}
	if strings.TrimSpace(action.Kind) == "" {
		return govern.ActionDescriptor{}, fmt.Errorf("action kind is required")
	}

	ceiling, err := govern.ParseMode(string(action.ModeCeiling))
	if err != nil {
		return govern.ActionDescriptor{}, fmt.Errorf("mode_ceiling: %w", err)
	}
	action.ModeCeiling = ceiling

	if action.Confidence < 0 || action.Confidence > 1 {
		return govern.ActionDescriptor{}, fmt.Errorf("confidence %v outside [0,1]", action.Confidence)
	}
	if action.RiskClass == "" {
		action.RiskClass = govern.RiskLow
	}
	if action.Reversibility == "" {
		action.Reversibility = govern.FullyReversible
	}
	return action, nil
}
