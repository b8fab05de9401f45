package outreach

import (
	"context"
	"log/slog"
	"strings"

	"hyprnurture/internal/model"
	"hyprnurture/pkg/search"
)

type CompanyEnricher struct {
	searcher search.Searcher
}

func NewCompanyEnricher(searcher search.Searcher) *CompanyEnricher {
	return &CompanyEnricher{searcher: searcher}
}

// Lookup prefers the knowledge graph and falls back to the first organic
// snippet that looks like a company description. It never fails; a lookup
// error produces a record carrying only the name and an error marker.
func (e *CompanyEnricher) Lookup(ctx context.Context, company string) model.CompanyProfile {
	resp, err := e.searcher.Search(ctx, company)
	if err != nil {
		slog.Warn("company lookup failed", "company", company, "error", err)
		return model.CompanyProfile{
			Name:   company,
			Source: model.SourceSerpAPI,
			Error:  model.CompanyNotFound,
		}
	}

	profile := model.CompanyProfile{
		Name:   company,
		Source: model.SourceSerpAPI,
	}

	if kg := resp.KnowledgeGraph; kg != nil {
		if kg.Title != "" {
			profile.Name = kg.Title
		}
		profile.Description = kg.Description
		profile.Category = kg.Type
		profile.Website = kg.Website
	}

	if profile.Description == "" {
		profile.Description = aboutSnippet(company, resp.OrganicResults)
	}

	return profile
}

func aboutSnippet(company string, results []search.OrganicResult) string {
	name := strings.ToLower(company)
	for _, r := range results {
		snippet := strings.ToLower(r.Snippet)
		if strings.Contains(snippet, name) || strings.Contains(snippet, "about") {
			return r.Snippet
		}
	}
	return ""
}
