package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/entmask/pkg/entmask/internalerr"
)

func TestLoadRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `
vocab: mesh.tsv
wordlist: https://example.com/common-words
inputs:
  - corpus1.gz
  - notes.txt
output: report.csv
text_field: abstract
workers: 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	run, err := LoadRun(path)
	if err != nil {
		t.Fatal(err)
	}

	if run.Vocab != "mesh.tsv" {
		t.Errorf("Vocab = %q", run.Vocab)
	}
	if len(run.Inputs) != 2 || run.Inputs[0] != "corpus1.gz" {
		t.Errorf("Inputs = %v", run.Inputs)
	}
	if run.Output != "report.csv" {
		t.Errorf("Output = %q", run.Output)
	}
	if run.TextField != "abstract" {
		t.Errorf("TextField = %q", run.TextField)
	}
	if run.Workers != 4 {
		t.Errorf("Workers = %d", run.Workers)
	}
}

func TestLoadRunBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRun(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		ok   bool
	}{
		{"complete", Run{Vocab: "v.tsv", Inputs: []string{"a.txt"}, Output: "out.csv"}, true},
		{"missing vocab", Run{Inputs: []string{"a.txt"}, Output: "out.csv"}, false},
		{"missing inputs", Run{Vocab: "v.tsv", Output: "out.csv"}, false},
		{"missing output", Run{Vocab: "v.tsv", Inputs: []string{"a.txt"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
