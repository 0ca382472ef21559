package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/solotrader/vitesmoke/pkg/check"
)

func passing() check.Checker {
	return check.Func(func() (bool, error) { return true, nil })
}

func failing() check.Checker {
	return check.Func(func() (bool, error) { return false, nil })
}

func erroring() check.Checker {
	return check.Func(func() (bool, error) { return false, errors.New("connection refused") })
}

func panicking() check.Checker {
	return check.Func(func() (bool, error) { panic("boom") })
}

func TestNew(t *testing.T) {
	r := New("http://localhost:5175", &bytes.Buffer{})

	if r.Target() != "http://localhost:5175" {
		t.Errorf("Target() = %q, want %q", r.Target(), "http://localhost:5175")
	}
	if got := r.Report(); got != (Report{}) {
		t.Errorf("Report() = %+v, want zero", got)
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		checker    check.Checker
		want       bool
		wantPassed int
		wantOutput string
	}{
		{"pass", passing(), true, 1, "[OK]"},
		{"fail", failing(), false, 0, "[FAIL]"},
		{"error", erroring(), false, 0, "connection refused"},
		{"panic", panicking(), false, 0, "error: boom"},
		{"nil checker", nil, false, 0, "no check to run"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New("http://localhost:5175", &buf)

			got := r.Execute("Example", tt.checker)

			if got != tt.want {
				t.Errorf("Execute() = %v, want %v", got, tt.want)
			}
			rep := r.Report()
			if rep.Executed != 1 {
				t.Errorf("Executed = %d, want 1", rep.Executed)
			}
			if rep.Passed != tt.wantPassed {
				t.Errorf("Passed = %d, want %d", rep.Passed, tt.wantPassed)
			}
			out := buf.String()
			if !strings.Contains(out, "Testing Example...") {
				t.Errorf("output missing start line: %q", out)
			}
			if !strings.Contains(out, tt.wantOutput) {
				t.Errorf("output = %q, want substring %q", out, tt.wantOutput)
			}
		})
	}
}

func TestExecute_CountersInvariant(t *testing.T) {
	r := New("http://localhost:5175", &bytes.Buffer{})
	checks := []check.Checker{passing(), failing(), erroring(), panicking(), passing(), nil}

	for i, c := range checks {
		before := r.Report()
		r.Execute("check", c)
		after := r.Report()

		if after.Executed != before.Executed+1 {
			t.Errorf("step %d: Executed %d -> %d, want +1", i, before.Executed, after.Executed)
		}
		if d := after.Passed - before.Passed; d < 0 || d > 1 {
			t.Errorf("step %d: Passed changed by %d, want 0 or 1", i, d)
		}
		if after.Passed > after.Executed {
			t.Errorf("step %d: Passed %d > Executed %d", i, after.Passed, after.Executed)
		}
	}

	if got := r.Report(); got != (Report{Executed: 6, Passed: 2}) {
		t.Errorf("Report() = %+v, want {Executed:6 Passed:2}", got)
	}
}

func TestExecute_NamesResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("http://localhost:5175", &buf)

	r.Execute("Static Assets", namedChecker{name: "http: http://localhost:5175/@vite/client"})

	if !strings.Contains(buf.String(), "Static Assets (http: http://localhost:5175/@vite/client)") {
		t.Errorf("output = %q, want display name with check name", buf.String())
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New("http://localhost:5175", &buf)
	r.Execute("a", passing())
	r.Execute("b", failing())

	rep := r.Summary()

	if rep.AllPassed() {
		t.Error("AllPassed() = true, want false")
	}
	if !strings.Contains(buf.String(), "Tests passed: 1/2") {
		t.Errorf("output = %q, want summary 1/2", buf.String())
	}
}

func TestReport_AllPassed(t *testing.T) {
	tests := []struct {
		report Report
		want   bool
	}{
		{Report{}, true},
		{Report{Executed: 3, Passed: 3}, true},
		{Report{Executed: 3, Passed: 2}, false},
		{Report{Executed: 3, Passed: 0}, false},
	}

	for _, tt := range tests {
		if got := tt.report.AllPassed(); got != tt.want {
			t.Errorf("%+v.AllPassed() = %v, want %v", tt.report, got, tt.want)
		}
	}
}

type namedChecker struct {
	name string
}

func (n namedChecker) Run() check.Result {
	return check.Result{Name: n.name, Status: check.StatusOK}
}
