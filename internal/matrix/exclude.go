package matrix

import (
	"fmt"

	"github.com/vk/buildgridgo/internal/config"
)

// Filter removes every job matched by some exclude rule. A rule matches a
// job when the job's value equals the rule's value for every axis the rule
// names; axes the rule does not name are unconstrained. A job with an axis
// left unset never satisfies a rule naming that axis.
//
// Rules are independent and removal is commutative, so rule order does not
// affect the result.
func Filter(axes *AxisSet, jobs []*Job, rules []*config.ExcludeRule) ([]*Job, error) {
	for i, rule := range rules {
		if len(rule.Match) == 0 {
			return nil, &AmbiguousRuleError{Kind: "exclude", Index: i}
		}
		if err := validateRuleAxes(axes, rule.Match); err != nil {
			return nil, fmt.Errorf("exclude rule at index %d: %w", i, err)
		}
	}

	kept := make([]*Job, 0, len(jobs))
	for _, job := range jobs {
		excluded := false
		for _, rule := range rules {
			if job.matches(rule.Match) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, job)
		}
	}
	return kept, nil
}
