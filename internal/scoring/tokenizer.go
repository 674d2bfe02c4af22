package scoring

import (
	"strings"
	"unicode"
)

// Tokenize splits text on runs of whitespace and lowercases every token.
// Punctuation stays attached unless trimPunct is set, in which case leading and
// trailing punctuation is removed and tokens left empty are dropped.
func Tokenize(text string, trimPunct bool) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.ToLower(f)
		if trimPunct {
			tok = strings.TrimFunc(tok, unicode.IsPunct)
			if tok == "" {
				continue
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
