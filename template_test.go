package afuzz

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseTemplateRejectsMalformedURLs(t *testing.T) {
	templates := []string{
		"example.test/@",
		"http://",
		"/relative/path/@",
		"://missing-scheme/@",
		"",
	}

	for _, raw := range templates {
		if _, err := ParseTemplate(raw); err != ErrInvalidURL {
			t.Fatalf("Expected ErrInvalidURL for %q, got %v", raw, err)
		}
	}
}

func TestParseTemplateRequiresPlaceholder(t *testing.T) {
	if _, err := ParseTemplate("http://example.test/x"); err != ErrMissingPlaceholder {
		t.Fatalf("Expected ErrMissingPlaceholder, got %v", err)
	}
}

func TestExpandLeavesNoPlaceholderBehind(t *testing.T) {
	template, err := ParseTemplate("http://example.test/@")
	if err != nil {
		t.Fatal(err)
	}

	payloads := []string{"admin", "login.php", "a/b", ""}
	for _, payload := range payloads {
		url := template.Expand(payload)
		if strings.Contains(url, Placeholder) {
			t.Fatalf("Expanded URL %q still contains the placeholder", url)
		}

		expected := "http://example.test/" + payload
		if url != expected {
			t.Fatalf("Expected %q, got %q", expected, url)
		}
	}
}

func TestTemplateFormatsAsItsRawPattern(t *testing.T) {
	const raw = "http://example.test/@"
	template, err := ParseTemplate(raw)
	if err != nil {
		t.Fatal(err)
	}

	if got := fmt.Sprintf("%s", template); got != raw {
		t.Fatalf("Expected %q, got %q", raw, got)
	}
}

func TestExpandReplacesEveryPlaceholder(t *testing.T) {
	template, err := ParseTemplate("http://example.test/@/@")
	if err != nil {
		t.Fatal(err)
	}

	const expected = "http://example.test/admin/admin"
	if url := template.Expand("admin"); url != expected {
		t.Fatalf("Expected %q, got %q", expected, url)
	}
}
