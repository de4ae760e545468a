// Package vocab constructs the controlled vocabulary: a mapping from
// case-normalized surface forms to their numeric identifiers.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/entmask/pkg/entmask/internalerr"
	"github.com/cognicore/entmask/pkg/entmask/stem"
)

// MinSurfaceLen is the minimum surface-form length accepted into the
// vocabulary. The matcher applies the same threshold to candidate tokens.
const MinSurfaceLen = 5

// Vocabulary maps title-cased surface forms to numeric identifiers.
// Built once, read-only afterwards; safe for concurrent reads.
type Vocabulary map[string]uint32

// TitleCase uppercases the first rune and leaves the rest untouched.
// Keys are stored in this form; duplicate normalized keys overwrite
// silently (last write wins).
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Build parses lines of the form "id<TAB>surface" into a Vocabulary.
// Lines that do not split into exactly two tab-separated fields are
// skipped silently. A surface form is rejected when it is shorter than
// MinSurfaceLen or its normalized stem appears in banned; the count of
// rejected entries is returned for observability. A numeric field that
// fails to parse as uint32 aborts the whole build.
func Build(r io.Reader, banned stem.Set) (Vocabulary, int, error) {
	v := make(Vocabulary)
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 2 {
			continue
		}

		surface := strings.TrimSpace(fields[1])
		if len(surface) < MinSurfaceLen || banned.Contains(surface) {
			skipped++
			continue
		}

		id64, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			return nil, skipped, fmt.Errorf("%w: %q: %v", internalerr.ErrInvalidIdentifier, fields[0], err)
		}

		v[TitleCase(surface)] = uint32(id64)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read vocabulary: %w", err)
	}

	return v, skipped, nil
}
