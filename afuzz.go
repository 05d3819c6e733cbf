// Package afuzz probes a target by substituting wordlist payloads into the @
// placeholder of a URL template and reporting which substitutions return HTTP 200.
// It can send requests one at a time in wordlist order, or fan them out across a
// worker pool sharing a single connection-reusing client, using go's sync.WaitGroup
// to wait until the last probe resolves.
package afuzz
