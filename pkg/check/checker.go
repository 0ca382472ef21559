package check

// Checker is implemented by all check types.
// Each check probes one aspect of the application under test
// and returns a Result indicating success or failure.
//
// Implementations:
//   - httpcheck.Check: GETs a URL and verifies status and body markers
//   - Func: adapter for ad-hoc boolean checks (used in tests)
type Checker interface {
	Run() Result
}

// Func adapts a zero-argument boolean function to the Checker interface,
// for callers and tests that have no dedicated check type.
// A false return fails the check; a non-nil error fails it with the error text.
type Func func() (bool, error)

// Run calls f and converts its outcome into a Result.
func (f Func) Run() Result {
	var result Result
	ok, err := f()
	if err != nil {
		return result.Fail("error: "+err.Error(), err)
	}
	if !ok {
		result.Status = StatusFail
		return result
	}
	result.Status = StatusOK
	return result
}
