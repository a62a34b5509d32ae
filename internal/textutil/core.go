package textutil

import (
	"regexp"
	"strings"
)

// annotationPatterns remove decorative metadata from a title, applied in
// order: bracketed content in every bracket style, trailing feat./cover
// credits, trailing version qualifiers, a leading numeric index, and a
// leftover unmatched tag from a previous run.
var annotationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(.*?\)`),
	regexp.MustCompile(`\{.*?\}`),
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`【.*?】`),
	regexp.MustCompile(`（.*?）`),
	regexp.MustCompile(`(?i)\sfeat\..*$`),
	regexp.MustCompile(`(?i)\sft\..*$`),
	regexp.MustCompile(`\s翻自.*$`),
	regexp.MustCompile(`(?i)\scover.*$`),
	regexp.MustCompile(`(?i)(-?\s?remix( version)?)$`),
	regexp.MustCompile(`(?i)(piano ver\.?)$`),
	regexp.MustCompile(`(?i)(acoustic)\s*$`),
	regexp.MustCompile(`(?i)(live)\s*$`),
	regexp.MustCompile(`(\[.*\])\s*$`),
	regexp.MustCompile(`^\d+\s*[-_.]?\s*`),
	regexp.MustCompile(`^[(\[]\s*未?匹配\s*[)\]]`),
}

// coreStripPattern keeps only word characters and whitespace once the
// annotation patterns have run.
var coreStripPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// wrappingBrackets are checked as matched pairs around the whole remaining
// string after annotation removal.
var wrappingBrackets = [][2]string{
	{"(", ")"},
	{"[", "]"},
	{"{", "}"},
	{"（", "）"},
	{"【", "】"},
}

// ExtractCore strips decorative annotations from a title and returns the
// minimal comparable title text. Total over any input; empty input yields an
// empty string.
func ExtractCore(title string) string {
	if title == "" {
		return ""
	}

	for _, pattern := range annotationPatterns {
		title = pattern.ReplaceAllString(title, "")
	}

	title = coreStripPattern.ReplaceAllString(title, "")
	title = whitespacePattern.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)

	for _, pair := range wrappingBrackets {
		if len(title) > len(pair[0])+len(pair[1]) &&
			strings.HasPrefix(title, pair[0]) && strings.HasSuffix(title, pair[1]) {
			title = strings.TrimSpace(title[len(pair[0]) : len(title)-len(pair[1])])
			break
		}
	}

	return title
}
