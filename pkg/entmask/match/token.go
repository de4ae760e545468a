package match

import "strings"

// delimiters is the fixed split set: whitespace, common punctuation,
// and bracket/quote characters. Hyphens are kept so hyphenated surface
// forms survive tokenization.
const delimiters = " \t\n\r.,;:!?()[]{}\"'"

// token is a paragraph token with its byte offset.
type token struct {
	Text string
	Off  int
}

// tokenize splits a paragraph on the delimiter set, tracking a running
// byte offset for each token as it is consumed.
func tokenize(text string) []token {
	var tokens []token
	start := -1

	for i, r := range text {
		if strings.ContainsRune(delimiters, r) {
			if start >= 0 {
				tokens = append(tokens, token{Text: text[start:i], Off: start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}

	// Don't forget the last token
	if start >= 0 {
		tokens = append(tokens, token{Text: text[start:], Off: start})
	}

	return tokens
}
