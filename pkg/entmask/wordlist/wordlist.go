// Package wordlist loads the banned-word source: a whitespace-separated
// word list read from a local file or fetched once over HTTP. Lists
// served as HTML pages are stripped to their text before tokenization.
package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Load reads the word source at pathOrURL and returns its tokens.
// Sources with an http:// or https:// scheme are fetched; anything
// else is treated as a local file path.
func Load(ctx context.Context, pathOrURL string) ([]string, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return fetch(ctx, pathOrURL)
	}

	data, err := os.ReadFile(pathOrURL)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}

func fetch(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		text = stripHTML(text)
	}

	return strings.Fields(text), nil
}

// stripHTML extracts the text content of an HTML document.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
