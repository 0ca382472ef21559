package main

import (
	"errors"
	"io"

	"github.com/solotrader/vitesmoke/pkg/httpcheck"
	"github.com/solotrader/vitesmoke/pkg/output"
	"github.com/solotrader/vitesmoke/pkg/runner"
	"github.com/solotrader/vitesmoke/pkg/vitecheck"
)

// ErrChecksFailed is returned when at least one check fails.
// The returned error causes Cobra to exit with code 1.
var ErrChecksFailed = errors.New("checks failed")

// runSmoke runs the suite against target, prints the transcript to w,
// and returns ErrChecksFailed unless every check passed.
func runSmoke(w io.Writer, target string, client httpcheck.HTTPClient) error {
	output.New(w).Banner("Solo Trader Platform - Frontend Smoke Test")

	r := runner.New(target, w)
	for _, nc := range vitecheck.Suite(r.Target(), client) {
		r.Execute(nc.Name, nc.Checker)
	}

	if !r.Summary().AllPassed() {
		return ErrChecksFailed
	}
	return nil
}
