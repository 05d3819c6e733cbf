package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/afuzz/afuzz"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
)

func actionFuzz(c *cli.Context) error {
	template, err := afuzz.ParseTemplate(c.String("url"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("[!] %v.", err), 1)
	}

	mode := afuzz.Mode(c.String("mode"))
	if !mode.Valid() {
		return cli.Exit(fmt.Sprintf("[!] Unknown mode '%s', expected sync or async.", mode), 1)
	}

	// The wordlist is checked before the output path is touched so a bad run
	// never truncates an existing log.
	wordlistPath := c.String("wordlist")
	if _, err := os.Stat(wordlistPath); err != nil {
		return cli.Exit(fmt.Sprintf("[!] Wordlist file '%s' not found.", wordlistPath), 1)
	}

	wordlist, err := afuzz.LoadWordlist(wordlistPath, c.Bool("skip-empty"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("[!] Error reading wordlist: %v", err), 1)
	}

	outputPath := c.String("output")
	if _, err := os.Stat(outputPath); err == nil && !confirmOverwrite(outputPath) {
		return cli.Exit("[!] Operation aborted.", 1)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("[!] Error opening output file: %v", err), 1)
	}
	defer outputFile.Close()

	logger := log.New(os.Stderr, "afuzz: ", log.Ldate|log.Ltime)
	timeout := time.Duration(c.Int("timeout")) * time.Second
	config := &afuzz.Config{
		Template:              template,
		Wordlist:              wordlist,
		Client:                afuzz.NewClient(timeout, c.Bool("skip-cert-verify")),
		Mode:                  mode,
		MaxConcurrentRequests: c.Int("concurrency"),
		Logger:                logger,
	}

	logger.Printf("Sending %d requests to %s", wordlist.Count(), template)

	bar := progressbar.NewOptions(wordlist.Count(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Probing..."),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
	)

	sink := afuzz.NewSink(outputFile, os.Stdout)
	fuzzer := &afuzz.Fuzzer{Config: config}
	for outcome := range fuzzer.Probe(context.Background()) {
		if err := sink.Accept(outcome); err != nil {
			return cli.Exit(fmt.Sprintf("[!] Error writing output: %v", err), 1)
		}
		bar.Add(1)
	}

	summary := sink.Summary()
	fmt.Printf("\nSuccessful responses (200): %d\n", summary.Successes)
	if summary.Errors > 0 {
		fmt.Printf("Requests with no response (network error/timeout): %d\n", summary.Errors)
	}
	return nil
}

func confirmOverwrite(path string) bool {
	fmt.Printf("[?] Output file '%s' already exists. Overwrite? (y/n): ", path)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "y"
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "afuzz",
		Usage:  "fuzz a URL template by substituting wordlist payloads for '@' and log the hits that return 200",
		Action: actionFuzz,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Required: true,
				Usage:    "base URL with @ as placeholder",
			},
			&cli.StringFlag{
				Name:     "wordlist",
				Aliases:  []string{"w"},
				Required: true,
				Usage:    "path to newline separated wordlist file",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    "output file for successful URLs, one per line",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   "sync",
				Usage:   "fuzzing mode (sync/async)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "cap on in-flight requests in async mode (0 = one worker per payload)",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Value: 10,
				Usage: "per-request timeout in seconds",
			},
			&cli.BoolFlag{
				Name:  "skip-empty",
				Usage: "drop blank wordlist lines instead of probing the bare template",
			},
			&cli.BoolFlag{
				Name:  "skip-cert-verify",
				Usage: "skip verifying SSL certificate when making requests",
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
