package strutil

import (
	"regexp"
	"testing"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "accented vowels and punctuation",
			title: "Città Nuova: Progetto É!",
			want:  "citta-nuova-progetto-e",
		},
		{
			name:  "all accented vowel variants",
			title: "àáâãäå èéêë ìíîï òóôõö ùúûü",
			want:  "aaaaaa-eeee-iiii-ooooo-uuuu",
		},
		{
			name:  "uppercase accents",
			title: "PERCHÉ L'ITALIA",
			want:  "perche-l-italia",
		},
		{
			name:  "run of symbols collapses to one hyphen",
			title: "eco --- sostenibilità!!! 2024",
			want:  "eco-sostenibilita-2024",
		},
		{
			name:  "leading and trailing junk trimmed",
			title: "  ...Benvenuti!  ",
			want:  "benvenuti",
		},
		{
			name:  "digits preserved",
			title: "Bilancio 2025, Q3",
			want:  "bilancio-2025-q3",
		},
		{
			name:  "untransliterated letters become hyphens",
			title: "straße",
			want:  "stra-e",
		},
		{
			name:  "all symbols yields empty",
			title: "!!! ??? ***",
			want:  "",
		},
		{
			name:  "empty input",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlug(tt.title)
			if got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if got != "" && !slugShape.MatchString(got) {
				t.Errorf("GenerateSlug(%q) = %q, does not match %s", tt.title, got, slugShape)
			}
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{
		"Città Nuova: Progetto É!",
		"Hello World",
		"Bilancio 2025, Q3",
		"eco --- sostenibilità!!! 2024",
	}
	for _, title := range titles {
		once := GenerateSlug(title)
		twice := GenerateSlug(once)
		if once != twice {
			t.Errorf("GenerateSlug not idempotent on %q: first %q, second %q", title, once, twice)
		}
	}
}
