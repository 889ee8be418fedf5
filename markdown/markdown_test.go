package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, input string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, input); err != nil {
		t.Fatalf("RenderMarkdown(%q) error: %v", input, err)
	}
	return buf.String()
}

func TestRenderMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", "Heading 1</h1>"},
		{"## Heading 2", "Heading 2</h2>"},
		{"### Heading 3", "Heading 3</h3>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownEmphasis(t *testing.T) {
	got := render(t, "text **bold** and *italic*")
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("missing strong: %q", got)
	}
	if !strings.Contains(got, "<em>italic</em>") {
		t.Errorf("missing em: %q", got)
	}
}

func TestRenderMarkdownCodeBlockWithLanguage(t *testing.T) {
	got := render(t, "```go\nfmt.Println(\"hello\")\n```")
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("code block should keep language-go class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println") {
		t.Errorf("code block missing content: %q", got)
	}
}

func TestRenderMarkdownLinks(t *testing.T) {
	got := render(t, "[site](https://example.com)")
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("missing link href: %q", got)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<th>a</th>") || !strings.Contains(got, "<td>2</td>") {
		t.Errorf("GFM table not rendered: %q", got)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	tests := []string{
		"<script>alert(1)</script>",
		"[x](javascript:alert(1))",
		`<img src="x" onerror="alert(1)">`,
	}
	for _, input := range tests {
		got := render(t, input)
		if strings.Contains(got, "script") || strings.Contains(got, "alert(1)") || strings.Contains(got, "onerror") {
			t.Errorf("RenderMarkdown(%q) leaked unsafe HTML: %q", input, got)
		}
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("# Title").Render(context.Background(), &buf); err != nil {
		t.Fatalf("component render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Title</h1>") {
		t.Errorf("component output = %q, want heading", buf.String())
	}
}
