package afuzz

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the per-request timeout used when the caller does not set one.
const DefaultTimeout = 10 * time.Second

// Client is a modified net/http Client that issues probes and classifies their
// results. Its transport pools connections, so one Client is shared by every
// worker in a run.
type Client struct {
	*http.Client
}

// NewClient builds a probe client with the given per-request timeout.
func NewClient(timeout time.Duration, skipCertVerify bool) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{}
	if skipCertVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Probe issues a single GET against url and classifies the result.
// Transport errors are captured in the returned Outcome rather than
// propagated; one dead probe must not take down its siblings.
func (c *Client) Probe(ctx context.Context, payload, url string) Outcome {
	outcome := Outcome{URL: url, Payload: payload}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	resp, err := c.Do(req)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	// Drain the body so the transport can reuse the connection.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	outcome.StatusCode = resp.StatusCode
	return outcome
}
