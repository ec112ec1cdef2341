package validate

import "errors"

// Result is the outcome of one check in a collect-all run.
type Result struct {
	// Check is the check name.
	Check string

	// Confirm is the check's user-facing confirmation text, for callers
	// that render passed checks.
	Confirm string

	// Err is nil when the check passed.
	Err error
}

// Report holds the outcome of running every check over one snapshot.
type Report struct {
	// Results lists one outcome per check, in execution order.
	Results []Result

	// Summary is the resolved view, nil unless every check passed.
	Summary *Summary
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
	}
	return true
}

// Failures returns the errors of the failed checks, in execution order.
func (r *Report) Failures() []error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}

// Err joins the failures into one error, nil when every check passed.
func (r *Report) Err() error {
	return errors.Join(r.Failures()...)
}
