package scoring

import "unicode/utf8"

const (
	maxKeywords      = 5
	minKeywordLength = 5
)

// Keywords returns up to five tokens longer than four characters that are not
// stop words, in their original order. Duplicates are kept.
func Keywords(tokens []string) []string {
	out := make([]string, 0, maxKeywords)
	for _, t := range tokens {
		if len(out) == maxKeywords {
			break
		}
		if utf8.RuneCountInString(t) < minKeywordLength || stopWordSet.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
