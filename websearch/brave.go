// Package websearch provides the web search fallback agents use when local
// retrieval comes up short.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Searcher runs a web search and returns formatted result text. An empty
// string with a nil error means no results.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Brave searches the web through the Brave Search API.
type Brave struct {
	APIKey     string
	BaseURL    string
	Count      int
	Country    string
	Lang       string
	FetchPages int
	client     *http.Client
}

var _ Searcher = (*Brave)(nil)

// BraveOption configures a Brave searcher.
type BraveOption func(*Brave)

// WithBaseURL sets the base URL for the Brave Search API.
func WithBaseURL(baseURL string) BraveOption {
	return func(b *Brave) {
		b.BaseURL = baseURL
	}
}

// WithCount sets the number of results to return (1-20).
func WithCount(count int) BraveOption {
	return func(b *Brave) {
		if count < 1 {
			count = 1
		}
		if count > 20 {
			count = 20
		}
		b.Count = count
	}
}

// WithCountry sets the country code for search results (e.g. "US").
func WithCountry(country string) BraveOption {
	return func(b *Brave) {
		b.Country = country
	}
}

// WithLang sets the language code for search results (e.g. "en").
func WithLang(lang string) BraveOption {
	return func(b *Brave) {
		b.Lang = lang
	}
}

// WithPageFetch makes Search also download the first n result pages and
// append their extracted text, for queries where snippets alone are too thin.
func WithPageFetch(n int) BraveOption {
	return func(b *Brave) {
		if n < 0 {
			n = 0
		}
		b.FetchPages = n
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) BraveOption {
	return func(b *Brave) {
		if client != nil {
			b.client = client
		}
	}
}

// NewBrave creates a Brave searcher. If apiKey is empty it falls back to the
// BRAVE_API_KEY environment variable.
func NewBrave(apiKey string, opts ...BraveOption) (*Brave, error) {
	if apiKey == "" {
		apiKey = os.Getenv("BRAVE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("BRAVE_API_KEY not set")
	}

	b := &Brave{
		APIKey:  apiKey,
		BaseURL: "https://api.search.brave.com/res/v1/web/search",
		Count:   5,
		Country: "US",
		Lang:    "en",
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type braveResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

// Search runs a web search and formats the results as numbered entries.
func (b *Brave) Search(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", fmt.Sprintf("%d", b.Count))
	if b.Country != "" {
		params.Set("country", b.Country)
	}
	if b.Lang != "" {
		params.Set("search_lang", b.Lang)
	}

	reqURL := fmt.Sprintf("%s?%s", b.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.APIKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("brave api returned status: %d", resp.StatusCode)
	}

	var result braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var sb strings.Builder
	for i, r := range result.Web.Results {
		sb.WriteString(fmt.Sprintf("%d. Title: %s\nURL: %s\nDescription: %s\n",
			i+1, r.Title, r.URL, r.Description))

		if i < b.FetchPages {
			if text, err := FetchPageText(ctx, b.client, r.URL); err == nil && text != "" {
				sb.WriteString("Page content: " + text + "\n")
			}
		}
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return "", nil
	}
	return sb.String(), nil
}
