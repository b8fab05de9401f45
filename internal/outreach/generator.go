package outreach

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"hyprnurture/internal/model"
	"hyprnurture/pkg/llm"
)

type Generator struct {
	news    *NewsFilter
	company *CompanyEnricher
	person  *PersonEnricher
	llm     llm.LLMClient
}

func NewGenerator(newsFilter *NewsFilter, company *CompanyEnricher, person *PersonEnricher, client llm.LLMClient) *Generator {
	return &Generator{
		news:    newsFilter,
		company: company,
		person:  person,
		llm:     client,
	}
}

// Generate enriches the request, asks the model for the two drafts and
// decodes its reply. Enrichment failures only reduce the prompt context;
// model and decoding failures are returned as *GenerationError and
// *ResponseMalformedError.
func (g *Generator) Generate(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error) {
	var (
		items   []model.NewsItem
		company model.CompanyProfile
		person  *model.PersonProfile
	)

	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		items = g.news.Recent(gctx, req.CompanyName)
		return nil
	})

	grp.Go(func() error {
		company = g.company.Lookup(gctx, req.CompanyName)
		return nil
	})

	grp.Go(func() error {
		p, err := g.person.Lookup(gctx, req.CompanyName, req.Name)
		if err != nil {
			slog.Warn("person lookup failed, using bare name", "person", req.Name, "company", req.CompanyName, "error", err)
			return nil
		}
		person = p
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if company.Website != "" {
		slog.Info("company data scraped", "company", company.Name, "website", company.Website)
	} else {
		slog.Info("no company website found", "company", req.CompanyName)
	}

	if person != nil {
		slog.Info("person data scraped", "person", person.Name, "linkedin", person.ProfileLink)
	}

	prompt := BuildPrompt(req, company, person, items)

	completion, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		slog.Error("llm completion failed", "company", req.CompanyName, "error", err)
		return nil, &GenerationError{Err: err}
	}

	slog.Info("raw model response", "model", completion.ModelUsed, "response", completion.Text)

	var reply struct {
		LinkedInMsg string `json:"linkedinMsg"`
		EmailHTML   string `json:"emailHtml"`
	}
	if err := llm.DecodeJSON(completion.Text, &reply); err != nil {
		slog.Error("model reply is not valid JSON", "error", err, "response", completion.Text)
		return nil, &ResponseMalformedError{Raw: completion.Text, Err: err}
	}

	return &model.GenerationResult{
		LinkedInMessage: reply.LinkedInMsg,
		EmailHTML:       reply.EmailHTML,
		NewsItems:       items,
	}, nil
}
