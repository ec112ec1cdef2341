package contracts

// Validator runs the ordered domain checks against a snapshot.
type Validator interface {
	// Validate stops at the first failed check.
	Validate() error

	// Report runs every check and collects the failures.
	Report() (*Report, error)
}

// Check is one named validation step
type Check struct {
	Name    string
	Confirm string
	Run     func() error
}

// Report holds the outcome of a full validation pass
type Report struct {
	Results  []Result
	Failures []error
}

// Result records one executed check
type Result struct {
	Check string
	Err   error
}
