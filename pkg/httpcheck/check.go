package httpcheck

import (
	"context"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/solotrader/vitesmoke/pkg/check"
)

// DefaultTimeout bounds a single request when Check.Timeout is unset.
const DefaultTimeout = 5 * time.Second

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout         time.Duration
	FollowRedirects bool
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{
		Timeout: c.Timeout,
	}

	// Disable automatic redirects unless explicitly enabled
	if !c.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return client.Do(req)
}

// Check GETs a URL and verifies its status code and body.
type Check struct {
	URL             string        // target URL (required)
	ExpectedStatus  int           // expected HTTP status (default: 200)
	AnyStatus       bool          // skip the status comparison, judge the body only
	Timeout         time.Duration // request timeout (default: 5s)
	Contains        []string      // response body must contain every entry verbatim
	Digest          bool          // report a BLAKE3 digest of the body
	FollowRedirects bool          // follow HTTP redirects (3xx)
	Client          HTTPClient    // injected for testing
}

// Run executes the HTTP check. Transport errors, timeouts and
// unexpected responses all end up as a failed Result.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "http: " + c.URL,
	}

	if c.URL == "" {
		return result.Failf("URL is required")
	}
	parsedURL, err := url.Parse(c.URL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return result.Failf("invalid URL: %s", c.URL)
	}

	expectedStatus := c.ExpectedStatus
	if expectedStatus == 0 {
		expectedStatus = http.StatusOK
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := c.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout, FollowRedirects: c.FollowRedirects}
	}

	// The context deadline also covers reading the body.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, http.NoBody)
	if err != nil {
		return result.Failf("failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return result.Failf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body []byte
	if len(c.Contains) > 0 || c.Digest {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return result.Failf("failed to read response body: %v", err)
		}
	}

	if !c.AnyStatus && resp.StatusCode != expectedStatus {
		return result.Failf("status %d, expected %d", resp.StatusCode, expectedStatus)
	}

	missing := missingMarkers(string(body), c.Contains)
	for _, m := range missing {
		result.AddDetailf("missing element: %s", m)
	}
	if len(missing) > 0 {
		return result.Failf("response body is missing %d of %d expected elements", len(missing), len(c.Contains))
	}

	result.Status = check.StatusOK
	result.AddDetailf("status %d", resp.StatusCode)
	if c.Digest {
		result.AddDetailf("blake3: %s", bodyDigest(body))
	}
	return result
}

// missingMarkers returns the markers not present in body, in order.
func missingMarkers(body string, markers []string) []string {
	var missing []string
	for _, m := range markers {
		if !strings.Contains(body, m) {
			missing = append(missing, m)
		}
	}
	return missing
}

// bodyDigest returns the first 16 hex characters of the BLAKE3 sum of body.
func bodyDigest(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])[:16]
}
