package textutil

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "Hello World", "hello world"},
		{"wave dash", "それは〜夢", "それは~夢"},
		{"long vowel mark", "スーパー", "ス-ハ-"},
		{"cjk brackets stripped", "曲名【初回盤】", "曲名初回盤"},
		{"smart quotes removed", "“quoted” title", "quoted title"},
		{"diacritics", "Café Déjà Vu", "cafe deja vu"},
		{"fullwidth punctuation", "ver．2－3", "ver.2-3"},
		{"kept punctuation", "a-b~c.d (e)", "a-b~c.d (e)"},
		{"garbage stripped", "song\x1f title★", "song title"},
		{"whitespace collapsed", "  a \t b\n c  ", "a b c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"それは〜夢（Ｌｉｖｅ）",
		"Café Déjà Vu",
		"スーパー・ラヴァー",
		"  mixed ＆ garbled ❤ text  ",
		"01. Ａｒｔｉｓｔ － Ｔｉｔｌｅ",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeWhitespaceBounds(t *testing.T) {
	inputs := []string{" leading", "trailing ", "a  b", "\t\n", "a　b"}
	for _, input := range inputs {
		got := Normalize(input)
		if got != strings.TrimSpace(got) {
			t.Errorf("Normalize(%q) = %q has leading/trailing space", input, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) = %q contains a whitespace run", input, got)
		}
	}
}

func TestNormalizeFullwidthMapping(t *testing.T) {
	// Fullwidth letters sit outside the mapped blocks and pass through
	// (case-folded), while mapped symbols that land outside the retained
	// character set are discarded entirely.
	if got := Normalize("ＡＢＣ"); got != "ａｂｃ" {
		t.Errorf("fullwidth letters should not be offset-mapped, got %q", got)
	}
	if got := Normalize("＃＄％"); got != "" {
		t.Errorf("mapped fullwidth symbols = %q, want empty", got)
	}
}
