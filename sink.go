package afuzz

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

// Sink records the outcomes of a run. It exclusively owns the output log for
// the run's duration: each successful probe URL is appended to the log, one
// per line, and echoed in green to the console as it arrives. Failures and
// transport errors produce no output but are tallied for the summary.
type Sink struct {
	mux     sync.Mutex
	log     io.Writer
	console io.Writer
	hit     *color.Color

	successes int
	failures  int
	errors    int
}

// NewSink builds a sink writing hit URLs to log and echoing them to console.
func NewSink(log, console io.Writer) *Sink {
	return &Sink{
		log:     log,
		console: console,
		hit:     color.New(color.FgGreen),
	}
}

// Accept records one outcome. Writes are serialized under the sink's mutex so
// hits arriving concurrently never interleave partial lines in the log.
// A log write error is returned to the caller; dropping hits on the floor
// would defeat the point of the run, so callers should treat it as fatal.
func (s *Sink) Accept(outcome Outcome) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if outcome.Errored() {
		s.errors++
		return nil
	}

	if !outcome.Success() {
		s.failures++
		return nil
	}

	s.successes++
	s.hit.Fprintln(s.console, outcome.URL)
	_, err := io.WriteString(s.log, outcome.URL+"\n")
	return err
}

// Summary is the tally of a run's outcomes.
type Summary struct {
	Successes int
	Failures  int
	Errors    int
}

// Summary returns the counts accumulated so far.
func (s *Sink) Summary() Summary {
	s.mux.Lock()
	defer s.mux.Unlock()
	return Summary{Successes: s.successes, Failures: s.failures, Errors: s.errors}
}
