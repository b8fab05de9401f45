package news

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUpstreamStatus = errors.New("news upstream returned an error")
	ErrSymbolNotFound = errors.New("no ticker symbol matches company")
)

type Article struct {
	Headline    string
	Detail      string
	URL         string
	PublishedAt time.Time
}

// Query restricts a search to articles about Keywords published on or after From.
type Query struct {
	Keywords string
	From     time.Time
	Limit    int
}

type NewsClient interface {
	Search(ctx context.Context, q Query) ([]Article, error)
	Name() string
}
