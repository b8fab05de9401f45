package app

import (
	"log/slog"

	"hyprnurture/internal/config"
	"hyprnurture/internal/outreach"
	"hyprnurture/pkg/llm"
	"hyprnurture/pkg/mail"
	"hyprnurture/pkg/news"
	"hyprnurture/pkg/search"
)

// App holds the pipeline components shared by the server and the CLI.
type App struct {
	News      *outreach.NewsFilter
	Company   *outreach.CompanyEnricher
	Person    *outreach.PersonEnricher
	Generator *outreach.Generator
	Mailer    mail.Sender
}

func New(cfg *config.Config) *App {
	for _, w := range cfg.Validate() {
		slog.Warn("config", "warning", w)
	}

	newsClient := newNewsClient(cfg.News)
	searcher := search.NewSerpAPIClient(cfg.Search.SerpAPIKey)
	llmClient := newLLMClient(cfg.LLM)

	slog.Info("pipeline configured",
		"news_source", newsClient.Name(),
		"llm_provider", cfg.LLM.Provider,
		"search", searcher.Name(),
	)

	a := &App{
		News:    outreach.NewNewsFilter(newsClient),
		Company: outreach.NewCompanyEnricher(searcher),
		Person:  outreach.NewPersonEnricher(searcher),
		Mailer:  mail.NewResendSender(cfg.Email.ResendKey, cfg.Email.From),
	}
	a.Generator = outreach.NewGenerator(a.News, a.Company, a.Person, llmClient)

	return a
}

func newNewsClient(cfg config.News) news.NewsClient {
	if cfg.Provider == config.NewsProviderFinnhub {
		return news.NewFinnHubClient(cfg.FinnhubKey)
	}
	return news.NewNewsAPIClient(cfg.NewsAPIKey)
}

func newLLMClient(cfg config.LLM) llm.LLMClient {
	if cfg.Provider == config.ProviderAnthropic {
		return llm.NewAnthropicClient(llm.AnthropicConfig{
			APIKey:      cfg.AnthropicKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		})
	}
	return llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	})
}
