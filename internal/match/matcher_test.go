package match

import (
	"strings"
	"testing"

	"tracksort/internal/scan"
	"tracksort/internal/textutil"
)

func TestFuzzyMatchLadder(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		threshold float64
		wantLabel string
	}{
		{
			name:      "exact raw equality",
			query:     "夜に駆ける",
			candidate: "夜に駆ける",
			wantLabel: "exact",
		},
		{
			name:      "core equality after stripping annotations",
			query:     "lemon (live)",
			candidate: "lemon",
			wantLabel: "core",
		},
		{
			name:      "query core contained in candidate",
			query:     "song b",
			candidate: "artist - song b",
			wantLabel: "contains-core",
		},
		{
			name:      "candidate core contained in query",
			query:     "the long night extended mix",
			candidate: "long night",
			wantLabel: "reverse-contains",
		},
		{
			name:      "similarity above threshold",
			query:     "sakura blossom",
			candidate: "sakura blosom",
			wantLabel: "similarity:",
		},
		{
			name:      "no evidence at all",
			query:     "alpha",
			candidate: "zzzzz",
			wantLabel: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threshold := tt.threshold
			if threshold == 0 {
				threshold = DefaultThreshold
			}
			query := textutil.Normalize(tt.query)
			candidate := textutil.Normalize(tt.candidate)
			matched, method := FuzzyMatch(query, candidate, threshold)

			if tt.wantLabel == "" {
				if matched != "" || method.Matched() {
					t.Fatalf("FuzzyMatch(%q, %q) = %q (%s), want no match", query, candidate, matched, method)
				}
				return
			}

			if matched != candidate {
				t.Fatalf("FuzzyMatch(%q, %q) = %q, want %q", query, candidate, matched, candidate)
			}
			if !strings.HasPrefix(method.Label(), tt.wantLabel) {
				t.Errorf("method = %q, want prefix %q", method.Label(), tt.wantLabel)
			}
		})
	}
}

func TestFuzzyMatchThresholdFloor(t *testing.T) {
	// Two titles whose ratio lands between the floor and any stricter
	// threshold: asking for 0.1 must still be treated as 0.65.
	query := "abcdefgh"
	candidate := "abcuvwxy"
	if s := textutil.Score(query, candidate); s >= FloorThreshold {
		t.Fatalf("fixture similarity %.2f is not below the floor", s)
	}

	if matched, method := FuzzyMatch(query, candidate, 0.1); matched != "" {
		t.Fatalf("threshold 0.1 admitted %q via %s, floor should forbid it", matched, method)
	}
}

func TestFuzzyMatchCommonSubstring(t *testing.T) {
	// No containment in either direction and similarity below threshold,
	// but a shared run covering at least half of the shorter title.
	query := "deep river x1y2"
	candidate := "a3b4 deep river"
	matched, method := FuzzyMatch(query, candidate, 0.99)
	if matched != candidate {
		t.Fatalf("FuzzyMatch = %q (%s), want common-substring match", matched, method)
	}
	if method.Label() != "common-substring" {
		t.Errorf("method = %q, want common-substring", method.Label())
	}
}

func record(filename string) scan.Record {
	rec := scan.ReadRecord(filename)
	return rec
}

func TestAllPicksBestCandidate(t *testing.T) {
	entries := []string{
		textutil.Normalize("Artist - Song A"),
		textutil.Normalize("Artist - Song B"),
	}

	outcome := All([]scan.Record{record("02 - Artist - Song B.flac")}, entries, 0.68)

	if len(outcome.Matched) != 1 || len(outcome.Unmatched) != 0 {
		t.Fatalf("matched %d, unmatched %d, want 1/0", len(outcome.Matched), len(outcome.Unmatched))
	}
	res := outcome.Matched[0]
	if res.Position != 2 {
		t.Errorf("position = %d, want 2", res.Position)
	}
	if res.Entry != entries[1] {
		t.Errorf("entry = %q, want %q", res.Entry, entries[1])
	}
	if res.Method.Confidence() <= 0.75 {
		t.Errorf("confidence %.2f did not outrank the substring tier", res.Method.Confidence())
	}
}

func TestAllTieKeepsFirstEntry(t *testing.T) {
	// Both entries contain the query title, so both score 0.85; the first
	// playlist position must win.
	entries := []string{"moon river piano", "moon river strings"}

	outcome := All([]scan.Record{record("moon river.mp3")}, entries, 0.68)

	if len(outcome.Matched) != 1 {
		t.Fatalf("matched %d records, want 1", len(outcome.Matched))
	}
	if got := outcome.Matched[0].Position; got != 1 {
		t.Errorf("position = %d, want 1 (first tie wins)", got)
	}
}

func TestAllEmptyCleanTitleIsUnmatched(t *testing.T) {
	rec := scan.Record{OriginalFilename: "???.mp3", DisplayTitle: "???", CleanTitle: ""}
	outcome := All([]scan.Record{rec}, []string{"anything"}, 0.68)

	if len(outcome.Matched) != 0 || len(outcome.Unmatched) != 1 {
		t.Fatalf("matched %d, unmatched %d, want 0/1", len(outcome.Matched), len(outcome.Unmatched))
	}
}

func TestOutcomeReport(t *testing.T) {
	entries := []string{textutil.Normalize("Artist - Song A")}
	outcome := All([]scan.Record{
		record("01 - Artist - Song A.flac"),
		record("unknown tune.mp3"),
	}, entries, 0.68)

	report := outcome.Report()
	if !strings.Contains(report, "Processing 2 files") {
		t.Errorf("report missing header:\n%s", report)
	}
	if !strings.Contains(report, "Matched 1 of 2 files (50.0%)") {
		t.Errorf("report missing summary:\n%s", report)
	}
}
