// Package pipeline fans input files out to a bounded pool of workers,
// runs the matcher over every document each file yields, and merges the
// per-worker output into one final report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/entmask/pkg/entmask/docread"
	"github.com/cognicore/entmask/pkg/entmask/internalerr"
	"github.com/cognicore/entmask/pkg/entmask/match"
	"github.com/cognicore/entmask/pkg/entmask/report"
	"github.com/cognicore/entmask/pkg/entmask/vocab"
)

// Options configures a pipeline run.
type Options struct {
	// Workers bounds the number of inputs processed concurrently.
	// Zero means one worker per CPU.
	Workers int
	// TextField names the nested text property of structured inputs.
	TextField string
	// MaxRecords caps parsed lines per structured input.
	MaxRecords int
	// Logger receives skipped-input notes. Nil means log.Default().
	Logger *log.Logger
	// Progress, when set, is called once per input as it completes.
	Progress func(path string)
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Run processes every input file against the vocabulary and writes the
// merged report to outputPath. Each worker owns a private part file
// until it hands the path over the completion channel; the orchestrator
// concatenates parts in arrival order and removes them as they are
// consumed. An unsupported extension or a structured record without an
// identifier aborts the run; an input that cannot be opened or read is
// logged and skipped.
func Run(ctx context.Context, v vocab.Vocabulary, inputs []string, outputPath string, opts Options) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	partDir := filepath.Dir(outputPath)
	parts := make(chan string, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			return processInput(ctx, v, input, partDir, parts, opts)
		})
	}

	var runErr error
	go func() {
		runErr = g.Wait()
		close(parts)
	}()

	var mergeErr error
	for part := range parts {
		if err := appendFile(out, part); err != nil && mergeErr == nil {
			mergeErr = err
		}
		os.Remove(part)
	}

	if runErr != nil {
		return runErr
	}
	if mergeErr != nil {
		return mergeErr
	}
	return out.Close()
}

// processInput reads one input file, scans its documents, and writes
// the resulting records to a worker-private part file.
func processInput(ctx context.Context, v vocab.Vocabulary, input, partDir string, parts chan<- string, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := opts.logger()
	docs, err := docread.ReadFile(input, docread.Options{
		TextField:  opts.TextField,
		MaxRecords: opts.MaxRecords,
		Logger:     logger,
	})
	if err != nil {
		if errors.Is(err, internalerr.ErrUnsupportedInput) || errors.Is(err, internalerr.ErrMissingDocID) {
			return err
		}
		// Single-input I/O failures abandon this file only.
		logger.Printf("skipping %s: %v", input, err)
		done(opts, input)
		return nil
	}

	part := filepath.Join(partDir, "entmask-"+ulid.Make().String()+".part")
	f, err := os.Create(part)
	if err != nil {
		return fmt.Errorf("create part file: %w", err)
	}

	w := report.NewWriter(f)
	for _, doc := range docs {
		for _, rec := range match.Scan(v, doc.Text) {
			rec.DocID = doc.ID
			if err := w.WriteRecord(rec); err != nil {
				f.Close()
				os.Remove(part)
				return fmt.Errorf("write part file: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(part)
		return fmt.Errorf("flush part file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(part)
		return fmt.Errorf("close part file: %w", err)
	}

	parts <- part
	done(opts, input)
	return nil
}

func done(opts Options, input string) {
	if opts.Progress != nil {
		opts.Progress(input)
	}
}

func appendFile(dst io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("merge part file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return fmt.Errorf("merge part file: %w", err)
	}
	return nil
}
