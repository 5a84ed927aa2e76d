package parser

import (
	"context"
	"strings"
	"testing"
)

func TestToHTMLRendersMarkdown(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantNot []string
	}{
		{
			name:  "heading and paragraph",
			input: "# Benvenuti\n\nPrimo paragrafo.",
			want:  []string{"<h1", "Benvenuti", "<p>Primo paragrafo.</p>"},
		},
		{
			name:  "link keeps href",
			input: "[sito](https://example.com)",
			want:  []string{"<a", `href="https://example.com"`},
		},
		{
			name:  "image keeps src and alt",
			input: "![copertina](https://example.com/img.png)",
			want:  []string{"<img", `src="https://example.com/img.png"`, `alt="copertina"`},
		},
		{
			name:    "script is stripped",
			input:   "testo\n\n<script>alert(1)</script>",
			want:    []string{"testo"},
			wantNot: []string{"<script", "alert(1)"},
		},
		{
			name:    "event handlers are stripped",
			input:   `<p onclick="steal()">ciao</p>`,
			want:    []string{"<p", "ciao"},
			wantNot: []string{"onclick", "steal"},
		},
		{
			name:    "iframe is stripped",
			input:   `<iframe src="https://evil.example"></iframe>ok`,
			want:    []string{"ok"},
			wantNot: []string{"<iframe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, missing %q", got, want)
				}
			}
			for _, wantNot := range tt.wantNot {
				if strings.Contains(got, wantNot) {
					t.Errorf("ToHTML() = %q, must not contain %q", got, wantNot)
				}
			}
		})
	}
}

func TestToHTMLServesFromCache(t *testing.T) {
	svc := NewService()
	const input = "# Cache"

	first, err := svc.ToHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if svc.htmlCache.Size() != 1 {
		t.Fatalf("cache size = %d, want 1", svc.htmlCache.Size())
	}
	second, err := svc.ToHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if first != second {
		t.Errorf("cached result differs: %q vs %q", first, second)
	}
}

func TestSanitizeHTMLIsIdempotent(t *testing.T) {
	svc := NewService()
	input := `<p>ok</p><script>alert(1)</script><img src="https://example.com/a.png" onerror="x()">`

	once := svc.SanitizeHTML(input)
	twice := svc.SanitizeHTML(once)
	if once != twice {
		t.Errorf("sanitize not idempotent: %q vs %q", once, twice)
	}
	if strings.Contains(once, "onerror") || strings.Contains(once, "<script") {
		t.Errorf("sanitized output still unsafe: %q", once)
	}
}

func TestPlainText(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple markup", "<p>Ciao <strong>mondo</strong></p>", "Ciao mondo"},
		{"nested lists", "<ul><li>uno</li><li>due</li></ul>", "uno due"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
