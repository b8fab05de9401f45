package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnHubClient searches company news by first resolving the company name
// to a listed ticker.
type FinnHubClient struct {
	client *finnhub.DefaultApiService
	now    func() time.Time
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	return newFinnHubClient(apiKey, finnhub.NewConfiguration())
}

func newFinnHubClient(apiKey string, cfg *finnhub.Configuration) *FinnHubClient {
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnHubClient{
		client: finnhub.NewAPIClient(cfg).DefaultApi,
		now:    time.Now,
	}
}

func (c *FinnHubClient) Search(ctx context.Context, q Query) ([]Article, error) {
	symbol, err := c.lookupSymbol(ctx, q.Keywords)
	if err != nil {
		return nil, err
	}

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(symbol).
		From(q.From.UTC().Format("2006-01-02")).
		To(c.now().UTC().Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub company news %s: %w", symbol, err)
	}

	var articles []Article

	for _, news := range res {
		a := Article{
			Headline: news.GetHeadline(),
			Detail:   news.GetSummary(),
			URL:      news.GetUrl(),
		}

		if news.Datetime != nil {
			a.PublishedAt = time.Unix(*news.Datetime, 0).UTC()
		}

		articles = append(articles, a)

		if q.Limit > 0 && len(articles) == q.Limit {
			break
		}
	}

	return articles, nil
}

func (c *FinnHubClient) lookupSymbol(ctx context.Context, company string) (string, error) {
	res, _, err := c.client.SymbolSearch(ctx).Q(company).Execute()
	if err != nil {
		return "", fmt.Errorf("finnhub symbol search: %w", err)
	}

	for _, info := range res.GetResult() {
		if symbol := info.GetSymbol(); symbol != "" {
			return symbol, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrSymbolNotFound, company)
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}
