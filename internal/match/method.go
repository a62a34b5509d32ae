package match

import (
	"fmt"
)

type methodKind int

const (
	kindNone methodKind = iota
	kindExact
	kindCore
	kindContainsCore
	kindReverseContains
	kindSimilarity
	kindCommonSubstring
)

// Method identifies the strategy that produced a file-to-playlist pairing and
// carries the numeric confidence used to rank candidates against each other.
// The zero value means "no match".
type Method struct {
	kind  methodKind
	score float64
}

var (
	methodExact           = Method{kind: kindExact}
	methodCore            = Method{kind: kindCore}
	methodContainsCore    = Method{kind: kindContainsCore}
	methodReverseContains = Method{kind: kindReverseContains}
	methodCommonSubstring = Method{kind: kindCommonSubstring}
)

func similarityMethod(score float64) Method {
	return Method{kind: kindSimilarity, score: score}
}

// Matched reports whether the method represents an actual match.
func (m Method) Matched() bool { return m.kind != kindNone }

// Confidence returns the numeric weight used to compare candidate matches.
// Exact and core equality outrank containment, which outranks substring
// evidence; numeric similarity ranks by its own score.
func (m Method) Confidence() float64 {
	switch m.kind {
	case kindExact, kindCore:
		return 1.0
	case kindContainsCore:
		return 0.85
	case kindReverseContains:
		return 0.8
	case kindSimilarity:
		return m.score
	case kindCommonSubstring:
		return 0.75
	default:
		return 0
	}
}

// Label returns the human-readable strategy name used in reports.
func (m Method) Label() string {
	switch m.kind {
	case kindExact:
		return "exact"
	case kindCore:
		return "core"
	case kindContainsCore:
		return "contains-core"
	case kindReverseContains:
		return "reverse-contains"
	case kindSimilarity:
		return fmt.Sprintf("similarity:%.2f", m.score)
	case kindCommonSubstring:
		return "common-substring"
	default:
		return ""
	}
}

func (m Method) String() string { return m.Label() }
