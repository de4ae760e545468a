// Package stem builds the banned-stem set used to filter noise words
// out of the vocabulary.
package stem

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// Set is a membership set of normalized word stems.
type Set map[string]struct{}

// Normalize reduces a word to the form stored in a Set:
// surrounding whitespace trimmed, lowercased, then stemmed.
// Vocabulary candidates must pass through the same function
// before testing membership.
func Normalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	return english.Stem(word, false)
}

// NewSet builds a Set from whitespace-separated tokens.
// Tokens beginning with '#' are comments and ignored.
func NewSet(tokens []string) Set {
	s := make(Set, len(tokens))
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "#") {
			continue
		}
		norm := Normalize(tok)
		if norm == "" {
			continue
		}
		s[norm] = struct{}{}
	}
	return s
}

// Contains reports whether the normalized form of word is banned.
func (s Set) Contains(word string) bool {
	_, ok := s[Normalize(word)]
	return ok
}

// Add inserts a word into the set, normalizing it first.
func (s Set) Add(word string) {
	norm := Normalize(word)
	if norm != "" {
		s[norm] = struct{}{}
	}
}
