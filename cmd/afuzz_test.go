package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestMissingWordlistLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "results.txt")

	const previousRun = "http://example.test/admin\n"
	if err := os.WriteFile(outputPath, []byte(previousRun), 0644); err != nil {
		t.Fatal(err)
	}

	app := newApp()
	// Keep the exit coder from terminating the test process.
	app.ExitErrHandler = func(c *cli.Context, err error) {}

	err := app.Run([]string{
		"afuzz",
		"--url", "http://example.test/@",
		"--wordlist", filepath.Join(dir, "doesnotexist.txt"),
		"--output", outputPath,
	})

	exitErr, ok := err.(cli.ExitCoder)
	if !ok {
		t.Fatalf("Expected an exit coder, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	contents, readErr := os.ReadFile(outputPath)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(contents) != previousRun {
		t.Fatalf("Output file was touched despite the missing wordlist: %q", contents)
	}
}
