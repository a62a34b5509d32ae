package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuationFolder maps fullwidth and CJK punctuation look-alikes to ASCII
// equivalents. This runs before any generic Unicode normalization so that
// script-specific punctuation is folded while the surrounding text is intact.
var punctuationFolder = strings.NewReplacer(
	"〜", "~",
	"～", "~",
	"ー", "-",
	"ｰ", "-",
	"（", "(",
	"）", ")",
	"「", "[",
	"」", "]",
	"【", "[",
	"】", "]",
	"｛", "{",
	"｝", "}",
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"・", ".",
	"。", ".",
)

// fullwidthRanges are the fullwidth punctuation, symbol, bracket, and operator
// blocks that map onto printable ASCII by subtracting fullwidthOffset.
var fullwidthRanges = [][2]rune{
	{0xFF01, 0xFF0F},
	{0xFF1A, 0xFF20},
	{0xFF3B, 0xFF40},
	{0xFF5B, 0xFF5E},
}

const fullwidthOffset = 0xFEE0

var (
	// unrecognizedPattern matches anything outside the retained character
	// set: word characters in any script, whitespace, and ()-~. punctuation.
	// It runs last so it only discards genuinely garbled bytes, never
	// meaningful CJK or Kana text.
	unrecognizedPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s()\-~.]`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw title text into a comparable form. The pipeline
// folds CJK punctuation to ASCII, applies NFC composition with case folding,
// strips combining marks via NFD decomposition, maps fullwidth punctuation to
// halfwidth, drops unrecognized characters, and collapses whitespace.
// Side-effect-free, deterministic, and idempotent.
func Normalize(text string) string {
	text = punctuationFolder.Replace(text)

	text = strings.Map(unicode.ToLower, norm.NFC.String(text))

	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), text)
	if err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if half, ok := foldFullwidth(r); ok {
			b.WriteRune(half)
			continue
		}
		b.WriteRune(r)
	}
	text = b.String()

	text = unrecognizedPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// foldFullwidth maps fullwidth punctuation to its halfwidth form, keeping only
// results that land in printable ASCII.
func foldFullwidth(r rune) (rune, bool) {
	for _, span := range fullwidthRanges {
		if r >= span[0] && r <= span[1] {
			half := r - fullwidthOffset
			if half >= 0x21 && half <= 0x7E {
				return half, true
			}
			return r, false
		}
	}
	return r, false
}
