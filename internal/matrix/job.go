package matrix

import (
	"sort"
	"strings"
)

// Job is a single cell of the matrix under resolution: a mapping from axis
// name to a selected value, plus derived attributes attached by include
// rules. An axis absent from the value map is "unset" (only possible for
// jobs introduced by include rules), and an unset axis never participates in
// exclude matching.
//
// A Job has no identity beyond its axis-value assignments; attributes never
// distinguish two jobs.
type Job struct {
	values   map[string]string
	attrKeys []string
	attrs    map[string]string
}

// NewJob returns an empty Job with no axis values and no attributes.
func NewJob() *Job {
	return &Job{
		values: make(map[string]string),
		attrs:  make(map[string]string),
	}
}

// SetValue assigns the job's value for an axis.
func (j *Job) SetValue(axis, value string) {
	j.values[axis] = value
}

// Value returns the job's value for an axis and whether the axis is set.
func (j *Job) Value(axis string) (string, bool) {
	v, ok := j.values[axis]
	return v, ok
}

// SetAttr attaches a derived attribute, overwriting any previous value for
// the same key. The first time a key is set fixes its position in attribute
// order; later overwrites change the value only.
func (j *Job) SetAttr(key, value string) {
	if _, exists := j.attrs[key]; !exists {
		j.attrKeys = append(j.attrKeys, key)
	}
	j.attrs[key] = value
}

// Attr returns a derived attribute value and whether it is present.
func (j *Job) Attr(key string) (string, bool) {
	v, ok := j.attrs[key]
	return v, ok
}

// AttrKeys returns the attribute keys in first-set order.
func (j *Job) AttrKeys() []string {
	return j.attrKeys
}

// matches reports whether the job satisfies every axis/value pair in the
// restriction. An axis the job leaves unset never satisfies a restriction
// that names it.
func (j *Job) matches(restriction map[string]string) bool {
	for axis, want := range restriction {
		got, ok := j.values[axis]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// applyAttrs merges a rule's attribute map into the job. Keys within a
// single rule apply in sorted order so that attribute order stays
// deterministic regardless of map iteration.
func (j *Job) applyAttrs(set map[string]string) {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		j.SetAttr(k, set[k])
	}
}

// describe renders the job's set axis values for error messages and logs,
// e.g. "mcu=esp32 net=wifi".
func (j *Job) describe(order []string) string {
	var parts []string
	for _, axis := range order {
		if v, ok := j.values[axis]; ok {
			parts = append(parts, axis+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
