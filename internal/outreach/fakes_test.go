package outreach

import (
	"context"
	"strings"
	"sync"

	"hyprnurture/pkg/llm"
	"hyprnurture/pkg/news"
	"hyprnurture/pkg/search"
)

type fakeNewsClient struct {
	articles []news.Article
	err      error
	gotQuery news.Query
}

func (f *fakeNewsClient) Search(ctx context.Context, q news.Query) ([]news.Article, error) {
	f.gotQuery = q
	return f.articles, f.err
}

func (f *fakeNewsClient) Name() string {
	return "fake"
}

// fakeSearcher answers person queries (those ending in "LinkedIn") separately
// from company queries.
type fakeSearcher struct {
	mu         sync.Mutex
	company    *search.Response
	person     *search.Response
	companyErr error
	personErr  error
	queries    []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) (*search.Response, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if strings.HasSuffix(query, " LinkedIn") {
		if f.personErr != nil {
			return nil, f.personErr
		}
		if f.person == nil {
			return &search.Response{}, nil
		}
		return f.person, nil
	}

	if f.companyErr != nil {
		return nil, f.companyErr
	}
	if f.company == nil {
		return &search.Response{}, nil
	}
	return f.company, nil
}

type fakeLLM struct {
	text      string
	err       error
	gotPrompt string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (*llm.Completion, error) {
	f.gotPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Text: f.text, ModelUsed: "fake-model"}, nil
}
