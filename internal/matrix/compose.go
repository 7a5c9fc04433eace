package matrix

import "strings"

// Well-known derived attribute keys.
const (
	// AttrTarget carries the toolchain triple the external build selects a
	// toolchain with. Every job must have one by composition time.
	AttrTarget = "target"
	// AttrEspName carries the optional vendor build-target alias.
	AttrEspName = "espname"
	// AttrBoot carries the optional bootloader variant.
	AttrBoot = "boot"
)

// Target is the toolchain descriptor handed to the external build.
type Target struct {
	Triple  string
	EspName string
	Boot    string
}

// ResolvedJob is the final, fully attributed build unit handed to a runner.
type ResolvedJob struct {
	// Name identifies the job in logs and reports; it is derived from the
	// job's set axis values in declaration order.
	Name string
	// Features is the ordered feature-flag string for the external compiler
	// invocation.
	Features string
	// Target selects the toolchain.
	Target Target
	// Values maps each set axis to its selected value.
	Values map[string]string
	// Attributes holds every derived attribute, routing metadata included.
	Attributes map[string]string
}

// Compose renders a surviving job into its ResolvedJob record. The feature
// string concatenates, with sep, the job's axis values in axis-declaration
// order followed by feature-bearing attribute values in first-set order;
// attribute keys listed in metadata are routing information and are omitted.
// A job without a target attribute fails with MissingTargetError.
func Compose(axes *AxisSet, job *Job, sep string, metadata []string) (*ResolvedJob, error) {
	meta := make(map[string]bool, len(metadata))
	for _, key := range metadata {
		meta[key] = true
	}

	var nameParts, featureParts []string
	values := make(map[string]string)
	for _, axis := range axes.Names() {
		v, ok := job.Value(axis)
		if !ok {
			continue
		}
		nameParts = append(nameParts, v)
		featureParts = append(featureParts, v)
		values[axis] = v
	}

	attrs := make(map[string]string, len(job.AttrKeys()))
	for _, key := range job.AttrKeys() {
		v, _ := job.Attr(key)
		attrs[key] = v
		if !meta[key] {
			featureParts = append(featureParts, v)
		}
	}

	name := strings.Join(nameParts, "-")
	triple, ok := job.Attr(AttrTarget)
	if !ok || triple == "" {
		return nil, &MissingTargetError{Job: name}
	}

	resolved := &ResolvedJob{
		Name:       name,
		Features:   strings.Join(featureParts, sep),
		Values:     values,
		Attributes: attrs,
	}
	resolved.Target.Triple = triple
	resolved.Target.EspName, _ = job.Attr(AttrEspName)
	resolved.Target.Boot, _ = job.Attr(AttrBoot)
	return resolved, nil
}
