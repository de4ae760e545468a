package docread

import (
	"compress/gzip"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/entmask/pkg/entmask/internalerr"
)

func writeGzip(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docs.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(strings.Join(lines, "\n"))); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietOptions() Options {
	return Options{Logger: log.New(io.Discard, "", 0)}
}

func TestReadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("one document\n\ntwo paragraphs"), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := ReadFile(path, quietOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].ID != "" {
		t.Errorf("plain-text document ID = %q, want empty", docs[0].ID)
	}
	if docs[0].Text != "one document\n\ntwo paragraphs" {
		t.Errorf("document text = %q", docs[0].Text)
	}
}

func TestReadCompressed(t *testing.T) {
	path := writeGzip(t,
		`{"corpusid":533,"content":{"text":"this is a Phenol peroxidase of \"json\""}}`,
		`{"corpusid":534,"content":{"text":"second document"}}`,
	)

	docs, err := ReadFile(path, quietOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != "533" {
		t.Errorf("docs[0].ID = %q, want 533", docs[0].ID)
	}
	if docs[0].Text != `this is a Phenol peroxidase of "json"` {
		t.Errorf("docs[0].Text = %q", docs[0].Text)
	}
	if docs[1].ID != "534" {
		t.Errorf("docs[1].ID = %q, want 534", docs[1].ID)
	}
}

func TestReadCompressedSkipsBadLines(t *testing.T) {
	path := writeGzip(t,
		``,
		`not json at all`,
		`{"corpusid":1,"content":{"body":"wrong field name"}}`,
		`{"corpusid":2,"content":{"text":"kept"}}`,
	)

	docs, err := ReadFile(path, quietOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d: %v", len(docs), docs)
	}
	if docs[0].ID != "2" || docs[0].Text != "kept" {
		t.Errorf("surviving document = %+v", docs[0])
	}
}

func TestReadCompressedTextFieldName(t *testing.T) {
	path := writeGzip(t, `{"corpusid":9,"content":{"abstract":"named field"}}`)

	opts := quietOptions()
	opts.TextField = "abstract"
	docs, err := ReadFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Text != "named field" {
		t.Fatalf("docs = %v", docs)
	}
}

func TestReadCompressedMissingIDFatal(t *testing.T) {
	path := writeGzip(t, `{"content":{"text":"no identifier"}}`)

	_, err := ReadFile(path, quietOptions())
	if !errors.Is(err, internalerr.ErrMissingDocID) {
		t.Fatalf("expected ErrMissingDocID, got %v", err)
	}
}

func TestReadCompressedRecordCap(t *testing.T) {
	lines := []string{
		`{"corpusid":1,"content":{"text":"a"}}`,
		`{"corpusid":2,"content":{"text":"b"}}`,
		`{"corpusid":3,"content":{"text":"c"}}`,
	}
	path := writeGzip(t, lines...)

	opts := quietOptions()
	opts.MaxRecords = 2
	docs, err := ReadFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected cap at 2 documents, got %d", len(docs))
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	_, err := ReadFile("input.pdf", quietOptions())
	if !errors.Is(err, internalerr.ErrUnsupportedInput) {
		t.Fatalf("expected ErrUnsupportedInput, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"corpus.txt", true},
		{"corpus.jsonl.gz", true},
		{"corpus.pdf", false},
		{"corpus", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
