// Package config loads the optional YAML run configuration. Values set
// on the command line override values from the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/entmask/pkg/entmask/internalerr"
)

// Run is the annotation run configuration.
type Run struct {
	// Vocab is the path to the tab-separated vocabulary source.
	Vocab string `yaml:"vocab"`
	// Wordlist is the banned-word source: a local path or an HTTP URL.
	Wordlist string `yaml:"wordlist"`
	// Inputs are the document files to annotate.
	Inputs []string `yaml:"inputs"`
	// Output is the final report path.
	Output string `yaml:"output"`
	// TextField names the nested text property of structured inputs.
	TextField string `yaml:"text_field"`
	// Workers bounds the number of concurrently processed inputs.
	// Zero means one worker per CPU.
	Workers int `yaml:"workers"`
}

// LoadRun loads a run configuration from a YAML file.
func LoadRun(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var run Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	return &run, nil
}

// Validate checks that the required fields are present after flag
// merging. The vocabulary source, at least one input, and the output
// path must all be explicit.
func (r *Run) Validate() error {
	if r.Vocab == "" {
		return fmt.Errorf("%w: vocabulary source path is required", internalerr.ErrInvalidConfig)
	}
	if len(r.Inputs) == 0 {
		return fmt.Errorf("%w: at least one input file is required", internalerr.ErrInvalidConfig)
	}
	if r.Output == "" {
		return fmt.Errorf("%w: output path is required", internalerr.ErrInvalidConfig)
	}
	return nil
}
