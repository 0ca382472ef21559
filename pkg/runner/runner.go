// Package runner executes named checks one after another and keeps
// the executed/passed tally for the run.
package runner

import (
	"io"

	"github.com/solotrader/vitesmoke/pkg/check"
	"github.com/solotrader/vitesmoke/pkg/output"
)

// Report is the tally of a run. Passed never exceeds Executed.
type Report struct {
	Executed int
	Passed   int
}

// AllPassed reports whether every executed check passed.
func (r Report) AllPassed() bool {
	return r.Passed == r.Executed
}

// Runner runs checks sequentially against a fixed target.
type Runner struct {
	target   string
	executed int
	passed   int
	out      *output.Printer
}

// New creates a Runner for target that writes its transcript to w.
func New(target string, w io.Writer) *Runner {
	return &Runner{
		target: target,
		out:    output.New(w),
	}
}

// Target returns the base URL the runner was created with.
func (r *Runner) Target() string {
	return r.target
}

// Execute runs c under the display name and records the outcome.
// It never panics: errors and panics inside c count as a failed check.
func (r *Runner) Execute(name string, c check.Checker) bool {
	r.executed++
	r.out.Start(name)

	result := runSafely(c)
	if result.Name == "" {
		result.Name = name
	} else {
		result.Name = name + " (" + result.Name + ")"
	}
	r.out.Result(result)

	if !result.OK() {
		return false
	}
	r.passed++
	return true
}

// Report returns the current tally.
func (r *Runner) Report() Report {
	return Report{Executed: r.executed, Passed: r.passed}
}

// Summary prints the tally and returns it.
func (r *Runner) Summary() Report {
	rep := r.Report()
	r.out.Summary(rep.Passed, rep.Executed)
	return rep
}

func runSafely(c check.Checker) (result check.Result) {
	defer func() {
		if p := recover(); p != nil {
			result = check.Result{}
			result.Failf("error: %v", p)
		}
	}()
	if c == nil {
		return result.Failf("no check to run")
	}
	return c.Run()
}
