package textutil

import "strings"

const (
	katakanaFirst = 'ァ' // ァ
	katakanaLast  = 'ヺ' // ヺ

	// Offset between the Katakana and Hiragana blocks.
	kanaOffset = 0x60
)

// ambiguousKana are rare Kana whose readings differ across sources; they are
// dropped before comparison rather than folded.
var ambiguousKana = map[rune]struct{}{
	'ゔ': {},
	'ゕ': {},
	'ゖ': {},
	'ゝ': {},
	'ゞ': {},
	'ゟ': {},
}

// ContainsKana reports whether s contains any Hiragana or Katakana code point.
func ContainsKana(s string) bool {
	for _, r := range s {
		if r >= '぀' && r <= 'ヿ' {
			return true
		}
	}
	return false
}

// FoldKana maps Katakana onto the Hiragana block and drops ambiguous Kana, so
// the two scripts compare equal.
func FoldKana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= katakanaFirst && r <= katakanaLast {
			r -= kanaOffset
		}
		if _, drop := ambiguousKana[r]; drop {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
