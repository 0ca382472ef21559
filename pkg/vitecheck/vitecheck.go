// Package vitecheck defines the smoke checks run against the Solo Trader
// frontend served by the Vite development server.
package vitecheck

import (
	"strings"

	"github.com/solotrader/vitesmoke/pkg/check"
	"github.com/solotrader/vitesmoke/pkg/httpcheck"
)

// DefaultTarget is the address the Vite dev server listens on for this app.
const DefaultTarget = "http://localhost:5175"

// ClientPath is where the Vite dev server exposes its HMR client module.
const ClientPath = "/@vite/client"

// Elements that the index page must contain verbatim.
const (
	RootMount  = `<div id="root">`
	PageTitle  = `<title>Enhanced Solo Trader with Gamification</title>`
	FaviconRef = `vite.svg`
)

// RequiredElements lists the index page markers in reporting order.
var RequiredElements = []string{RootMount, PageTitle, FaviconRef}

// NamedCheck pairs a display name with a check.
type NamedCheck struct {
	Name    string
	Checker check.Checker
}

// All checks follow redirects and judge the final response.

// Accessibility passes iff GET {base} answers 200.
func Accessibility(base string, client httpcheck.HTTPClient) *httpcheck.Check {
	return &httpcheck.Check{
		URL:             base,
		Timeout:         httpcheck.DefaultTimeout,
		FollowRedirects: true,
		Client:          client,
	}
}

// Structure passes iff the body of GET {base} contains every required
// element, whatever the status code.
func Structure(base string, client httpcheck.HTTPClient) *httpcheck.Check {
	return &httpcheck.Check{
		URL:             base,
		AnyStatus:       true,
		Timeout:         httpcheck.DefaultTimeout,
		Contains:        RequiredElements,
		Digest:          true,
		FollowRedirects: true,
		Client:          client,
	}
}

// ClientAsset passes iff GET {base}/@vite/client answers 200.
func ClientAsset(base string, client httpcheck.HTTPClient) *httpcheck.Check {
	return &httpcheck.Check{
		URL:             strings.TrimSuffix(base, "/") + ClientPath,
		Timeout:         httpcheck.DefaultTimeout,
		FollowRedirects: true,
		Client:          client,
	}
}

// Suite returns the three checks in the order they must run.
// A nil client makes each check use a real HTTP client.
func Suite(base string, client httpcheck.HTTPClient) []NamedCheck {
	return []NamedCheck{
		{Name: "Application Accessibility", Checker: Accessibility(base, client)},
		{Name: "HTML Structure", Checker: Structure(base, client)},
		{Name: "Static Assets", Checker: ClientAsset(base, client)},
	}
}
