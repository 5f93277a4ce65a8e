package websearch

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxPageText bounds the extracted text so one verbose page cannot crowd out
// the other results in the LLM prompt.
const maxPageText = 2000

var pageWhitespaceRe = regexp.MustCompile(`\s+`)

// FetchPageText downloads a page and extracts its readable body text,
// stripping scripts, styles and navigation chrome.
func FetchPageText(ctx context.Context, client *http.Client, pageURL string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()
	text := pageWhitespaceRe.ReplaceAllString(doc.Find("body").Text(), " ")
	text = strings.TrimSpace(text)
	if len(text) > maxPageText {
		text = text[:maxPageText]
	}
	return text, nil
}
