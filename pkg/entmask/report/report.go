// Package report formats detection records as output lines:
//
//	"matched_surface_form",identifier,"masked_context",document_id
//
// Embedded double quotes are escaped as \". No header row is written.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/entmask/pkg/entmask/match"
)

// FormatRecord renders one record as a report line, newline included.
func FormatRecord(rec match.Record) string {
	return fmt.Sprintf("\"%s\",%d,\"%s\",%s\n",
		escape(rec.Surface), rec.ID, escape(rec.Context), rec.DocID)
}

// Writer buffers formatted records onto an underlying stream.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w in a buffered record writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteRecord appends one formatted record.
func (w *Writer) WriteRecord(rec match.Record) error {
	_, err := w.bw.WriteString(FormatRecord(rec))
	return err
}

// Flush drains the buffer to the underlying stream.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
