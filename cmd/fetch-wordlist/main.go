// fetch-wordlist downloads a word list, normalizes every token
// (trim, lowercase, stem), and writes the stems to a local file, one
// per line, for later runs to use offline.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/cognicore/entmask/pkg/entmask/stem"
	"github.com/cognicore/entmask/pkg/entmask/wordlist"
)

func main() {
	var (
		src = flag.String("url", "", "Word list source: URL or local path (required)")
		out = flag.String("out", "wordlist.txt", "Output file")
	)
	flag.Parse()

	if *src == "" {
		log.Fatal("--url required")
	}

	tokens, err := wordlist.Load(context.Background(), *src)
	if err != nil {
		log.Fatal("fetch word list: ", err)
	}

	set := stem.NewSet(tokens)
	stems := make([]string, 0, len(set))
	for s := range set {
		stems = append(stems, s)
	}
	sort.Strings(stems)

	if err := os.WriteFile(*out, []byte(strings.Join(stems, "\n")+"\n"), 0644); err != nil {
		log.Fatal("write word list: ", err)
	}

	log.Printf("✓ Wrote %d stems to %s", len(stems), *out)
}
