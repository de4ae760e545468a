// Package docread adapts input files into a uniform stream of
// documents. Two shapes are supported: plain text (one document per
// file) and gzip-compressed newline-delimited JSON with a nested text
// property and a numeric corpus identifier.
package docread

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cognicore/entmask/pkg/entmask/internalerr"
)

// DefaultMaxRecords caps the number of successfully parsed lines per
// structured input, bounding memory and time on large corpus dumps.
const DefaultMaxRecords = 1000

// DefaultTextField is the name of the nested text property inside the
// "content" object of a structured record.
const DefaultTextField = "text"

// Document is one unit of text handed to the matcher. ID is empty for
// plain-text inputs and the numeric corpus identifier for structured
// ones.
type Document struct {
	Text string
	ID   string
}

// Options controls structured-input parsing.
type Options struct {
	// TextField names the text property under "content".
	// Empty means DefaultTextField.
	TextField string
	// MaxRecords caps successfully parsed lines per input.
	// Zero means DefaultMaxRecords.
	MaxRecords int
	// Logger receives skipped-line notes. Nil means log.Default().
	Logger *log.Logger
}

func (o Options) textField() string {
	if o.TextField == "" {
		return DefaultTextField
	}
	return o.TextField
}

func (o Options) maxRecords() int {
	if o.MaxRecords <= 0 {
		return DefaultMaxRecords
	}
	return o.MaxRecords
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Supported reports whether the file extension maps to a known reader.
func Supported(path string) bool {
	switch filepath.Ext(path) {
	case ".txt", ".gz":
		return true
	}
	return false
}

// ReadFile resolves the reader by file extension and returns the
// documents the input yields. Unknown extensions return
// internalerr.ErrUnsupportedInput.
func ReadFile(path string, opts Options) ([]Document, error) {
	switch filepath.Ext(path) {
	case ".txt":
		return readPlain(path)
	case ".gz":
		return readCompressed(path, opts)
	}
	return nil, fmt.Errorf("%w: %s", internalerr.ErrUnsupportedInput, path)
}

// readPlain treats the whole file as one document with an empty ID.
func readPlain(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []Document{{Text: string(data)}}, nil
}

// readCompressed parses a gzip stream of JSON lines. Empty lines and
// lines that fail to parse are skipped with a note; a record without
// the text field is skipped; a record without a numeric "corpusid" is
// a fatal error for the run. Parsing stops after MaxRecords
// successfully decoded lines.
func readCompressed(path string, opts Options) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	defer gz.Close()

	var docs []Document
	logger := opts.logger()
	lineNo := 0
	parsed := 0

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for parsed < opts.maxRecords() && scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			logger.Printf("%s: line %d: skipping unparseable record: %v", path, lineNo, err)
			continue
		}
		parsed++

		text, ok := textAt(obj, opts.textField())
		if !ok {
			logger.Printf("%s: line %d: skipping record without %q field", path, lineNo, opts.textField())
			continue
		}

		id, ok := corpusID(obj)
		if !ok {
			return nil, fmt.Errorf("%w: %s: line %d", internalerr.ErrMissingDocID, path, lineNo)
		}

		docs = append(docs, Document{Text: text, ID: id})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return docs, nil
}

// textAt extracts the named text property from the record's "content"
// object.
func textAt(obj map[string]any, field string) (string, bool) {
	content, ok := obj["content"].(map[string]any)
	if !ok {
		return "", false
	}
	text, ok := content[field].(string)
	return text, ok
}

// corpusID extracts the numeric document identifier and renders it as
// a decimal string.
func corpusID(obj map[string]any) (string, bool) {
	n, ok := obj["corpusid"].(float64)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(int64(n), 10), true
}
