// Package match finds vocabulary entries inside free-form text and
// produces one masked-context record per distinct match per paragraph.
//
// Matching runs a one-token lookback window: the bigram formed by the
// previous (title-cased) token and the current raw token is tried first,
// then the previous token alone. Unigram matches therefore trail one
// token behind their textual position; the lookback must see the
// following token before deciding the bigram did not apply.
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/entmask/pkg/entmask/vocab"
)

// MaskToken replaces each matched surface form in the emitted context.
const MaskToken = "<MASK>"

// Record is one detection: the matched surface form, its identifier,
// and a copy of the paragraph with that form masked out. DocID is
// filled in by the caller that knows the source document.
type Record struct {
	Surface string
	ID      uint32
	Context string
	DocID   string
}

// Scan splits text into paragraphs on "\n\n" and matches each
// paragraph independently. Records come back in paragraph order, then
// token-position order within a paragraph. Deduplication is
// paragraph-scoped: a surface form recurring in a later paragraph is
// reported again.
func Scan(v vocab.Vocabulary, text string) []Record {
	var records []Record
	for _, para := range strings.Split(text, "\n\n") {
		records = append(records, scanParagraph(v, para)...)
	}
	return records
}

func scanParagraph(v vocab.Vocabulary, para string) []Record {
	var records []Record
	seen := make(map[string]bool)
	lastWord := ""

	for _, tok := range tokenize(para) {
		word := tok.Text

		// The bigram joins the title-cased previous token with the
		// raw current token, mirroring how vocabulary keys are stored.
		bigram := lastWord + " " + word
		if id, ok := v[bigram]; ok && len(word) >= vocab.MinSurfaceLen && !seen[bigram] {
			records = append(records, newRecord(para, bigram, id))
			seen[bigram] = true
			// Both tokens are consumed; the current token must not be
			// reconsidered as a unigram on the next step.
			lastWord = ""
			continue
		}

		if id, ok := v[lastWord]; ok && len(lastWord) >= vocab.MinSurfaceLen && !seen[lastWord] {
			records = append(records, newRecord(para, lastWord, id))
			seen[lastWord] = true
		}

		lastWord = vocab.TitleCase(word)
	}

	// The lookback drops the paragraph's tail token; check it alone.
	if id, ok := v[lastWord]; ok && len(lastWord) >= vocab.MinSurfaceLen && !seen[lastWord] {
		records = append(records, newRecord(para, lastWord, id))
	}

	return records
}

// newRecord masks every occurrence of the two case variants of key
// (title-cased and first-letter-lowercased) in a fresh copy of the
// paragraph, so each record carries only its own mask.
func newRecord(para, key string, id uint32) Record {
	masked := strings.ReplaceAll(para, key, MaskToken)
	masked = strings.ReplaceAll(masked, lowerFirst(key), MaskToken)
	return Record{Surface: key, ID: id, Context: masked}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
