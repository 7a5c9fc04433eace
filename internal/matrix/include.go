package matrix

import (
	"fmt"
	"sort"

	"github.com/vk/buildgridgo/internal/config"
)

// Merge applies the ordered include rules to the base job sequence.
//
// Each rule's match is a partial axis assignment. When at least one existing
// job agrees with the match on every specified axis, the rule's attributes
// are merged into every such job (later rules overwrite earlier attribute
// values on key collision). When no job matches, the rule introduces a new
// standalone job carrying only the axes it specifies; the other axes stay
// unset. Base jobs keep their cartesian order and appended jobs follow in
// rule-declaration order, so the merge is fully deterministic.
func Merge(axes *AxisSet, jobs []*Job, rules []*config.IncludeRule) ([]*Job, error) {
	merged := append([]*Job(nil), jobs...)

	for i, rule := range rules {
		if len(rule.Match) == 0 {
			return nil, &AmbiguousRuleError{Kind: "include", Index: i}
		}
		if err := validateRuleAxes(axes, rule.Match); err != nil {
			return nil, fmt.Errorf("include rule at index %d: %w", i, err)
		}
		for key := range rule.Set {
			if axes.Has(key) {
				return nil, fmt.Errorf("include rule at index %d: attribute %q shadows an axis", i, key)
			}
		}

		matchedAny := false
		for _, job := range merged {
			if job.matches(rule.Match) {
				job.applyAttrs(rule.Set)
				matchedAny = true
			}
		}
		if matchedAny {
			continue
		}

		// No existing job agrees with the rule: it becomes a new job of its
		// own, with unspecified axes left unset.
		job := NewJob()
		for _, axis := range sortedKeys(rule.Match) {
			job.SetValue(axis, rule.Match[axis])
		}
		job.applyAttrs(rule.Set)
		merged = append(merged, job)
	}

	return merged, nil
}

// validateRuleAxes fails with UnknownAxisError when a rule names an axis that
// was never declared.
func validateRuleAxes(axes *AxisSet, match map[string]string) error {
	for _, axis := range sortedKeys(match) {
		if !axes.Has(axis) {
			return &UnknownAxisError{Axis: axis}
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
