package outreach

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"hyprnurture/internal/model"
	"hyprnurture/pkg/news"
)

const (
	newsWindow      = 7 * 24 * time.Hour
	newsPageSize    = 10
	maxNewsItems    = 5
	maxSnippetChars = 200
)

var businessKeywords = []string{"merger", "funding", "expansion", "revenue", "growth", "investment"}

// NewsFilter keeps last week's articles about a company that mention a
// business event.
type NewsFilter struct {
	client news.NewsClient
	now    func() time.Time
}

func NewNewsFilter(client news.NewsClient) *NewsFilter {
	return &NewsFilter{client: client, now: time.Now}
}

// Recent never fails: upstream errors are logged and yield an empty list.
func (f *NewsFilter) Recent(ctx context.Context, company string) []model.NewsItem {
	items := []model.NewsItem{}

	articles, err := f.client.Search(ctx, news.Query{
		Keywords: company,
		From:     f.now().Add(-newsWindow),
		Limit:    newsPageSize,
	})
	if err != nil {
		slog.Error("news fetch failed", "source", f.client.Name(), "company", company, "error", err)
		return items
	}

	for _, a := range articles {
		if !mentionsBusinessEvent(a) {
			continue
		}

		items = append(items, toNewsItem(a))
		if len(items) == maxNewsItems {
			break
		}
	}

	slog.Info("news filtered", "source", f.client.Name(), "company", company, "fetched", len(articles), "kept", len(items))

	return items
}

func mentionsBusinessEvent(a news.Article) bool {
	title := strings.ToLower(a.Headline)
	detail := strings.ToLower(a.Detail)
	for _, k := range businessKeywords {
		if strings.Contains(title, k) || strings.Contains(detail, k) {
			return true
		}
	}
	return false
}

func toNewsItem(a news.Article) model.NewsItem {
	var publishedAt string
	if !a.PublishedAt.IsZero() {
		publishedAt = a.PublishedAt.UTC().Format(time.RFC3339)
	}

	return model.NewsItem{
		Title:       a.Headline,
		URL:         a.URL,
		Snippet:     truncate(a.Detail, maxSnippetChars) + "...",
		PublishedAt: publishedAt,
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
