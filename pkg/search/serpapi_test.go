package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newTestSerpAPIClient(srv *httptest.Server, apiKey string) *SerpAPIClient {
	client := &SerpAPIClient{
		apiKey:     apiKey,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	return client
}

func TestSerpAPISearch(t *testing.T) {
	var gotEngine, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEngine = r.URL.Query().Get("engine")
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"knowledge_graph": {
				"title": "Acme Corporation",
				"type": "Manufacturing company",
				"description": "Acme makes anvils.",
				"website": "https://acme.example"
			},
			"organic_results": [
				{"position": 1, "title": "Acme - Home", "link": "https://acme.example", "snippet": "Welcome to Acme."}
			]
		}`))
	}))
	defer srv.Close()

	client := newTestSerpAPIClient(srv, "test-key")

	resp, err := client.Search(context.Background(), "Acme")

	assert.Equal(t, nil, err)
	assert.Equal(t, "google", gotEngine)
	assert.Equal(t, "Acme", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.NotEqual(t, nil, resp.KnowledgeGraph)
	assert.Equal(t, "Acme Corporation", resp.KnowledgeGraph.Title)
	assert.Equal(t, "Manufacturing company", resp.KnowledgeGraph.Type)
	assert.Equal(t, "https://acme.example", resp.KnowledgeGraph.Website)
	assert.Equal(t, 1, len(resp.OrganicResults))
	assert.Equal(t, "Welcome to Acme.", resp.OrganicResults[0].Snippet)
}

func TestSerpAPISearchWithoutKnowledgeGraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic_results": []}`))
	}))
	defer srv.Close()

	client := newTestSerpAPIClient(srv, "test-key")

	resp, err := client.Search(context.Background(), "Acme")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, resp.KnowledgeGraph == nil)
	assert.Equal(t, 0, len(resp.OrganicResults))
}

func TestSerpAPISearchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestSerpAPIClient(srv, "test-key")

	_, err := client.Search(context.Background(), "Acme")

	assert.Equal(t, true, errors.Is(err, ErrUpstreamStatus))
}

func TestSerpAPISearchMissingKey(t *testing.T) {
	client := NewSerpAPIClient("")

	_, err := client.Search(context.Background(), "Acme")

	assert.Equal(t, ErrMissingAPIKey, err)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
