package afuzz

import "net/http"

// Outcome is the classified result of a single probe. Exactly one
// classification applies: the probe got HTTP 200, got some other status, or
// never received a response at all. Probe errors are data, not failures of
// the run, so they travel in the outcome instead of an error return.
type Outcome struct {
	// URL is the fully substituted probe URL. Consumers of an async run must
	// match outcomes by URL, not by arrival position.
	URL string

	// Payload is the wordlist entry that produced the probe.
	Payload string

	// StatusCode is the received HTTP status, or 0 when Err is set.
	StatusCode int

	// Err is the transport error that prevented a response, if any.
	Err error
}

// Success reports whether the probe received HTTP 200.
func (o Outcome) Success() bool {
	return o.Err == nil && o.StatusCode == http.StatusOK
}

// Errored reports whether the probe failed before receiving any response.
func (o Outcome) Errored() bool {
	return o.Err != nil
}
