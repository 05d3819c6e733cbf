package afuzz

import "log"

// Mode selects the scheduling strategy for a run.
type Mode string

const (
	// ModeSync sends one request at a time, in payload order.
	ModeSync Mode = "sync"

	// ModeAsync fans requests out across a worker pool and guarantees nothing
	// about outcome order.
	ModeAsync Mode = "async"
)

// Valid reports whether m names a known scheduling mode.
func (m Mode) Valid() bool {
	return m == ModeSync || m == ModeAsync
}

// Config holds all fuzzer configuration.
type Config struct {
	Template *Template
	Wordlist *Wordlist
	Client   *Client
	Mode     Mode

	// MaxConcurrentRequests caps the worker pool in async mode.
	// Zero means one worker per payload, matching the uncapped fan-out of a
	// run with no limit configured.
	MaxConcurrentRequests int

	Logger *log.Logger
}
