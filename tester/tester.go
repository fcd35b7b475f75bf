package tester

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/config"
	"github.com/monkeytypegame/monkeytype-redirects/model"
)

// ProbeHeader marks verification traffic. The redirect route skips stats
// logging for marked requests and issues a real 302 even in development
// mode, so probes observe production behavior without polluting counters.
const ProbeHeader = "x-monkeytype-redirects-test"

// ProbeResult is the outcome of a single protocol probe. A failing live
// redirect is an expected, reportable condition: the outcome is always data,
// never an HTTP-level error.
type ProbeResult struct {
	Result bool   `json:"result"`
	Error  string `json:"error,omitempty"`
}

// TestResult combines both protocol probes for a config
type TestResult struct {
	UUID  string      `json:"uuid"`
	HTTP  ProbeResult `json:"http"`
	HTTPS ProbeResult `json:"https"`
}

// Tester verifies that a config's live endpoints still redirect as
// configured, over HTTP and HTTPS independently.
type Tester struct {
	timeout    time.Duration
	portSuffix string
}

// New creates a tester. Outside production the probes target the local dev
// port; in production the hostnames resolve on their default ports.
func New(cfg config.TesterConfig, production bool) *Tester {
	suffix := ""
	if !production {
		suffix = ":" + cfg.DevPort
	}
	return &Tester{
		timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		portSuffix: suffix,
	}
}

// Test probes the config over both protocols concurrently and waits for
// both to settle. Each probe owns its own timeout; one expiring does not
// affect the other.
func (t *Tester) Test(ctx context.Context, cfg *model.RedirectConfig) TestResult {
	result := TestResult{UUID: cfg.UUID}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.HTTP = t.probe(ctx, "http", cfg)
	}()
	go func() {
		defer wg.Done()
		result.HTTPS = t.probe(ctx, "https", cfg)
	}()
	wg.Wait()

	log.Info().
		Str("uuid", cfg.UUID).
		Bool("http", result.HTTP.Result).
		Str("http_error", result.HTTP.Error).
		Bool("https", result.HTTPS.Result).
		Str("https_error", result.HTTPS.Error).
		Msg("Redirect test complete")

	return result
}

func (t *Tester) probe(ctx context.Context, scheme string, cfg *model.RedirectConfig) ProbeResult {
	probeURL := fmt.Sprintf("%s://%s%s/redirect", scheme, cfg.Source, t.portSuffix)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	redirected := false
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			redirected = true
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return ProbeResult{Error: fmt.Sprintf("Request failed: %v", err)}
	}
	req.Header.Set(ProbeHeader, "true")

	resp, err := client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("uuid", cfg.UUID).Str("probe_url", probeURL).Msg("Redirect probe failed")
		return ProbeResult{Error: probeFailureCause(err)}
	}
	defer resp.Body.Close()

	finalURL := strings.TrimRight(resp.Request.URL.String(), "/")
	targetURL := strings.TrimRight(cfg.Target, "/")

	var cause string
	switch {
	case !redirected:
		cause = "Request was not redirected"
	case resp.StatusCode != http.StatusOK:
		cause = fmt.Sprintf("Request returned status %d", resp.StatusCode)
	case finalURL != targetURL:
		cause = fmt.Sprintf("Request returned url %s instead of %s", finalURL, targetURL)
	default:
		return ProbeResult{Result: true}
	}

	log.Warn().
		Str("uuid", cfg.UUID).
		Str("probe_url", probeURL).
		Bool("redirected", redirected).
		Int("status", resp.StatusCode).
		Str("final_url", finalURL).
		Msg("Redirect test failed")

	return ProbeResult{Error: cause}
}

// probeFailureCause labels a transport failure with the most specific
// lower-level fault available.
func probeFailureCause(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("DNS lookup failed for %s", dnsErr.Name)
	}

	var certErr x509.UnknownAuthorityError
	if errors.As(err, &certErr) {
		return "TLS certificate not trusted"
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return "TLS certificate does not match hostname"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Sprintf("Connection failed: %v", opErr.Err)
	}

	return "Request failed"
}
