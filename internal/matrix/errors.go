package matrix

import "fmt"

// UnknownAxisError is returned when a rule or query references an axis that
// was never declared.
type UnknownAxisError struct {
	Axis string
}

// Error implements the error interface.
func (e *UnknownAxisError) Error() string {
	return fmt.Sprintf("unknown axis %q", e.Axis)
}

// AmbiguousRuleError is returned when an include or exclude rule specifies no
// axis values at all. Such a rule would match every job, which is almost
// certainly a configuration mistake, so resolution rejects it outright.
type AmbiguousRuleError struct {
	Kind  string // "include" or "exclude"
	Index int    // zero-based position in declaration order
}

// Error implements the error interface.
func (e *AmbiguousRuleError) Error() string {
	return fmt.Sprintf("ambiguous %s rule at index %d: no axis values specified", e.Kind, e.Index)
}

// MissingTargetError is returned when a job survives merging and filtering
// without a resolved target attribute. A job list with an untargeted job must
// never be handed to a runner, so this fails the whole run.
type MissingTargetError struct {
	Job string
}

// Error implements the error interface.
func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("job %q has no resolved target attribute", e.Job)
}
