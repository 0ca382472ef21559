package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/solotrader/vitesmoke/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	bold  = "\033[1m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, bold, reset = "", "", "", "", ""
	}
}

// Printer writes the human-readable smoke test transcript.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the run title underlined.
func (p *Printer) Banner(title string) {
	fmt.Fprintf(p.w, "%s%s%s\n", bold, title, reset)
	fmt.Fprintln(p.w, strings.Repeat("=", 50))
}

// Start announces a check before it runs.
func (p *Printer) Start(name string) {
	fmt.Fprintf(p.w, "\nTesting %s...\n", name)
}

// Result outputs a check result with colored status.
func (p *Printer) Result(r check.Result) {
	indent := "     "
	if r.OK() {
		fmt.Fprintf(p.w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(p.w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Fprintf(p.w, "%s%s\n", indent, formatLabel(d))
	}
}

// Summary prints the passed/executed count and the overall verdict.
func (p *Printer) Summary(passed, executed int) {
	fmt.Fprintf(p.w, "\nTests passed: %d/%d\n", passed, executed)
	if passed == executed {
		fmt.Fprintf(p.w, "%s[OK]%s All checks passed\n", green, reset)
		fmt.Fprintf(p.w, "%sNote: frontend-only app with mock data; UI behaviour needs browser automation.%s\n", dim, reset)
		return
	}
	fmt.Fprintf(p.w, "%s[FAIL]%s Some checks failed. Check that the dev server is running.\n", red, reset)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(detail string) string {
	label, rest, found := strings.Cut(detail, ":")
	if !found {
		return detail
	}
	return dim + label + ":" + reset + rest
}
