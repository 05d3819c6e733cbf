package afuzz

import (
	"context"
	"sync"
)

// Fuzzer substitutes each wordlist payload into the URL template and probes
// the resulting URL. It uses the producer-consumer pattern so callers stream
// outcomes as probes resolve instead of waiting for the whole run.
type Fuzzer struct {
	*Config
}

// Probe dispatches one request per payload and sends the outcomes into the
// returned channel, closing it once every payload has resolved. Every payload
// produces exactly one outcome; a probe that errors is reported as data and
// never stops its siblings. There is no retry and no mid-run cancellation.
//
// In sync mode outcomes arrive in exact payload order. In async mode they
// arrive in completion order.
func (f *Fuzzer) Probe(ctx context.Context) <-chan Outcome {
	if f.Mode == ModeAsync {
		return f.probeAsync(ctx)
	}
	return f.probeSync(ctx)
}

// probeOne expands one payload and resolves its probe. Transport errors stay
// on the outcome; they are only echoed to the run's logger so the output log
// and stdout keep carrying hits exclusively.
func (f *Fuzzer) probeOne(ctx context.Context, payload string) Outcome {
	outcome := f.Client.Probe(ctx, payload, f.Template.Expand(payload))
	if outcome.Errored() && f.Logger != nil {
		f.Logger.Printf("Error sending request to %s: %v", outcome.URL, outcome.Err)
	}
	return outcome
}

// probeSync runs one probe at a time. Each request fully resolves before the
// next one is built, so dispatch order and outcome order both match the wordlist.
func (f *Fuzzer) probeSync(ctx context.Context) <-chan Outcome {
	outcomes := make(chan Outcome)

	go func(outcomes chan<- Outcome) {
		defer close(outcomes)
		for _, payload := range f.Wordlist.Payloads() {
			outcomes <- f.probeOne(ctx, payload)
		}
	}(outcomes)

	return outcomes
}

// probeAsync fans payloads out over a pool of workers sharing the run's
// client. The outcome channel closes only after the last worker drains,
// giving consumers a single join point.
func (f *Fuzzer) probeAsync(ctx context.Context) <-chan Outcome {
	payloads := f.Wordlist.Payloads()
	outcomes := make(chan Outcome)
	jobs := make(chan string)

	workers := f.MaxConcurrentRequests
	if workers <= 0 || workers > len(payloads) {
		workers = len(payloads)
	}

	var waitGroup sync.WaitGroup
	waitGroup.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer waitGroup.Done()
			for payload := range jobs {
				outcomes <- f.probeOne(ctx, payload)
			}
		}()
	}

	go func(jobs chan<- string) {
		for _, payload := range payloads {
			jobs <- payload
		}
		close(jobs)
	}(jobs)

	go func() {
		waitGroup.Wait()
		close(outcomes)
	}()

	return outcomes
}
