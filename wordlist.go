package afuzz

import (
	"bufio"
	"os"
	"strings"
)

// Wordlist is the ordered sequence of payloads read from a newline-delimited file.
// It is materialized fully so a run knows its request count up front and so
// workers can take payloads without coordinating reads on a shared file.
type Wordlist struct {
	payloads []string
}

// LoadWordlist reads a wordlist file into memory, trimming each line of
// surrounding whitespace. Blank lines are kept: an empty payload probes the
// template with the placeholder simply removed, which is a useful probe in its
// own right. Pass skipEmpty to drop them instead.
func LoadWordlist(path string, skipEmpty bool) (*Wordlist, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	wordlist := &Wordlist{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		payload := strings.TrimSpace(scanner.Text())
		if skipEmpty && payload == "" {
			continue
		}
		wordlist.payloads = append(wordlist.payloads, payload)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return wordlist, nil
}

// Payloads returns the payloads in file order.
func (w *Wordlist) Payloads() []string {
	return w.payloads
}

// Count returns the number of payloads, which is the number of requests a run will send.
func (w *Wordlist) Count() int {
	return len(w.payloads)
}
