package matrix

// Expand produces the full cartesian product of the axis set as a sequence
// of jobs, one per combination. Iteration is nested over axes in declaration
// order, so the first declared axis varies slowest. The result has exactly
// the product of the axis sizes, carries no attributes, and contains no
// duplicates.
func Expand(axes *AxisSet) []*Job {
	names := axes.Names()
	if len(names) == 0 {
		return nil
	}

	total := 1
	for _, name := range names {
		total *= len(axes.values[name])
	}

	jobs := make([]*Job, 0, total)
	indices := make([]int, len(names))
	for {
		job := NewJob()
		for i, name := range names {
			job.SetValue(name, axes.values[name][indices[i]])
		}
		jobs = append(jobs, job)

		// Odometer increment: last axis varies fastest.
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(axes.values[names[pos]]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			return jobs
		}
	}
}
