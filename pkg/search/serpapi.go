package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const serpAPISearchURL = "https://serpapi.com/search.json"

// Searcher runs a single web search and returns the structured response.
type Searcher interface {
	Search(ctx context.Context, query string) (*Response, error)
}

// Response holds the parts of a Google results page the enrichers read.
// KnowledgeGraph is nil when the engine shows no entity panel.
type Response struct {
	KnowledgeGraph *KnowledgeGraph
	OrganicResults []OrganicResult
}

type KnowledgeGraph struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

type OrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}

// SerpAPIClient queries the Google engine through SerpAPI.
type SerpAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *SerpAPIClient) Name() string {
	return "SerpAPI"
}

func (c *SerpAPIClient) Search(ctx context.Context, query string) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPISearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var raw struct {
		KnowledgeGraph *KnowledgeGraph `json:"knowledge_graph"`
		OrganicResults []OrganicResult `json:"organic_results"`
		Error          string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serpapi decode: %w", err)
	}

	if raw.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamStatus, raw.Error)
	}

	return &Response{
		KnowledgeGraph: raw.KnowledgeGraph,
		OrganicResults: raw.OrganicResults,
	}, nil
}
