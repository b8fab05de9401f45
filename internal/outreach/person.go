package outreach

import (
	"context"
	"fmt"
	"strings"

	"hyprnurture/internal/model"
	"hyprnurture/pkg/search"
)

const profileLinkPattern = "linkedin.com/in/"

type PersonEnricher struct {
	searcher search.Searcher
}

func NewPersonEnricher(searcher search.Searcher) *PersonEnricher {
	return &PersonEnricher{searcher: searcher}
}

// Lookup returns (nil, nil) when no result links to a profile page.
func (e *PersonEnricher) Lookup(ctx context.Context, company, person string) (*model.PersonProfile, error) {
	resp, err := e.searcher.Search(ctx, fmt.Sprintf("%s %s LinkedIn", person, company))
	if err != nil {
		return nil, fmt.Errorf("person lookup %q: %w", person, err)
	}

	for _, r := range resp.OrganicResults {
		if !strings.Contains(r.Link, profileLinkPattern) {
			continue
		}

		return &model.PersonProfile{
			Name:        person,
			ProfileLink: r.Link,
			Title:       r.Title,
			Snippet:     r.Snippet,
			Source:      model.SourceSerpAPI,
		}, nil
	}

	return nil, nil
}
