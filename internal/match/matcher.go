package match

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tracksort/internal/scan"
	"tracksort/internal/textutil"
)

// DefaultThreshold is the similarity threshold applied when the caller does
// not supply one.
const DefaultThreshold = 0.72

// FloorThreshold is the hard lower bound: no caller-supplied threshold can
// admit similarity matches below it.
const FloorThreshold = 0.65

// FuzzyMatch runs the tiered match decision between a query title and a
// playlist candidate, first hit wins. It returns the candidate and the method
// that matched, or a zero Method when nothing qualified.
func FuzzyMatch(query, candidate string, threshold float64) (string, Method) {
	if threshold < FloorThreshold {
		threshold = FloorThreshold
	}

	if query == candidate {
		return candidate, methodExact
	}

	queryNorm := textutil.Normalize(query)
	candNorm := textutil.Normalize(candidate)
	queryCore := textutil.ExtractCore(queryNorm)
	candCore := textutil.ExtractCore(candNorm)

	if queryCore == candCore {
		return candidate, methodCore
	}
	if strings.Contains(candNorm, queryCore) || strings.Contains(candNorm, queryNorm) {
		return candidate, methodContainsCore
	}
	if strings.Contains(queryNorm, candCore) {
		return candidate, methodReverseContains
	}

	if score := textutil.Score(queryNorm, candNorm); score >= threshold {
		return candidate, similarityMethod(score)
	}

	run := textutil.LongestCommonRun(queryNorm, candNorm)
	shorter := utf8.RuneCountInString(queryNorm)
	if n := utf8.RuneCountInString(candNorm); n < shorter {
		shorter = n
	}
	if run > 0 && float64(run) >= float64(shorter)*0.5 {
		return candidate, methodCommonSubstring
	}

	return "", Method{}
}

// Result pairs a matched file with its playlist position. Position is the
// 1-based index of the winning entry in the de-duplicated playlist; the
// renamer later renumbers positions to be contiguous and unique.
type Result struct {
	Position int
	Method   Method
	Entry    string
	Record   scan.Record
}

// Outcome partitions the scanned files into matched and unmatched sets. Every
// record lands in exactly one of the two; a record never matches twice.
type Outcome struct {
	Matched   []Result
	Unmatched []scan.Record
}

// All matches every file record against the playlist entries and keeps, per
// record, the highest-confidence candidate. Ties keep the first (lowest
// playlist index) candidate encountered. Records with an empty clean title
// are classified unmatched without scanning the playlist.
func All(records []scan.Record, entries []string, threshold float64) Outcome {
	var out Outcome
	for _, record := range records {
		if record.CleanTitle == "" {
			out.Unmatched = append(out.Unmatched, record)
			continue
		}

		best := Result{Record: record}
		bestScore := 0.0
		for idx, entry := range entries {
			matched, method := FuzzyMatch(record.CleanTitle, entry, threshold)
			if matched == "" {
				continue
			}
			// Overwrite only on strictly greater confidence so the
			// first best-scoring entry wins ties.
			if score := method.Confidence(); score > bestScore {
				bestScore = score
				best.Position = idx + 1
				best.Method = method
				best.Entry = matched
			}
		}

		if bestScore > 0 {
			out.Matched = append(out.Matched, best)
		} else {
			out.Unmatched = append(out.Unmatched, record)
		}
	}
	return out
}

// Report renders the matching decisions as the human-readable run report
// section. The structured Outcome remains the source of truth; this is a
// pure projection.
func (o Outcome) Report() string {
	var b strings.Builder
	total := len(o.Matched) + len(o.Unmatched)
	fmt.Fprintf(&b, "Processing %d files...\n", total)

	for _, res := range o.Matched {
		fmt.Fprintf(&b, "  %s\n", res.Record.DisplayTitle)
		fmt.Fprintf(&b, "    matched (%s) -> playlist #%d: %q\n", res.Method.Label(), res.Position, res.Entry)
	}
	for _, rec := range o.Unmatched {
		if rec.CleanTitle == "" {
			fmt.Fprintf(&b, "  %s\n    unusable title, left unmatched\n", rec.DisplayTitle)
			continue
		}
		fmt.Fprintf(&b, "  %s\n    no match\n", rec.DisplayTitle)
	}

	fmt.Fprintf(&b, "Matched %d of %d files", len(o.Matched), total)
	if total > 0 {
		fmt.Fprintf(&b, " (%.1f%%)", float64(len(o.Matched))/float64(total)*100)
	}
	b.WriteString("\n")
	return b.String()
}
