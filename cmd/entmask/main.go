package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/cognicore/entmask/pkg/entmask/config"
	"github.com/cognicore/entmask/pkg/entmask/pipeline"
	"github.com/cognicore/entmask/pkg/entmask/stem"
	"github.com/cognicore/entmask/pkg/entmask/vocab"
	"github.com/cognicore/entmask/pkg/entmask/wordlist"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML run configuration (optional)")
		vocabPath   = flag.String("vocab", "", "Tab-separated vocabulary source (required)")
		outputPath  = flag.String("out", "", "Final report path (required)")
		wordlistSrc = flag.String("wordlist", "", "Banned-word list: local path or URL (optional)")
		textField   = flag.String("text-field", "", `Structured-input text field name (default "text")`)
		workers     = flag.Int("workers", 0, "Concurrently processed inputs (default: number of CPUs)")
		quiet       = flag.Bool("quiet", false, "Disable progress bars")
	)
	flag.Parse()

	_ = godotenv.Load()

	run := &config.Run{}
	if *configPath != "" {
		loaded, err := config.LoadRun(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		run = loaded
	}

	// Flags and positional inputs override the config file.
	if *vocabPath != "" {
		run.Vocab = *vocabPath
	}
	if *outputPath != "" {
		run.Output = *outputPath
	}
	if *wordlistSrc != "" {
		run.Wordlist = *wordlistSrc
	}
	if run.Wordlist == "" {
		run.Wordlist = os.Getenv("ENTMASK_WORDLIST")
	}
	if *textField != "" {
		run.TextField = *textField
	}
	if *workers > 0 {
		run.Workers = *workers
	}
	if args := flag.Args(); len(args) > 0 {
		run.Inputs = args
	}

	if err := run.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	banned := stem.Set{}
	if run.Wordlist != "" {
		tokens, err := wordlist.Load(ctx, run.Wordlist)
		if err != nil {
			log.Fatal("load banned-word list: ", err)
		}
		banned = stem.NewSet(tokens)
		log.Printf("banned-word list: %d stems", len(banned))
	}

	v, skipped, err := buildVocabulary(run.Vocab, banned, *quiet)
	if err != nil {
		log.Fatal("build vocabulary: ", err)
	}
	log.Printf("vocabulary: %d entries, %d skipped", len(v), skipped)

	opts := pipeline.Options{
		Workers:   run.Workers,
		TextField: run.TextField,
	}
	if !*quiet {
		bar := progressbar.Default(int64(len(run.Inputs)), "annotating")
		opts.Progress = func(string) { _ = bar.Add(1) }
	}

	if err := pipeline.Run(ctx, v, run.Inputs, run.Output, opts); err != nil {
		log.Fatal(err)
	}

	log.Printf("report written to %s", run.Output)
}

// buildVocabulary reads the vocabulary source, rendering a byte
// progress bar unless quiet. Any I/O error here is fatal for the run.
func buildVocabulary(path string, banned stem.Set, quiet bool) (vocab.Vocabulary, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var r io.Reader = f
	if !quiet {
		if info, err := f.Stat(); err == nil {
			bar := progressbar.DefaultBytes(info.Size(), "vocabulary")
			r = io.TeeReader(f, bar)
		}
	}

	return vocab.Build(r, banned)
}
