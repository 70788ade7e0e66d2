// Package news fetches recent company headlines from the Google News RSS
// feed.
package news

import (
	"context"
	"net/url"

	"github.com/mmcdole/gofeed"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Article is one headline entry.
type Article struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

// Service pulls a company's recent coverage from the news feed.
type Service struct {
	parser *gofeed.Parser
	log    *zap.Logger
}

func NewService(log *zap.Logger) *Service {
	return &Service{parser: gofeed.NewParser(), log: log}
}

// Fetch returns up to limit recent articles mentioning the company.
func (s *Service) Fetch(ctx context.Context, company string, limit int) ([]Article, error) {
	query := url.QueryEscape(company + " company")
	feedURL := "https://news.google.com/rss/search?q=" + query + "&hl=en-US&gl=US&ceid=US:en"

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, eris.Wrapf(err, "news: fetching feed for %q", company)
	}

	articles := make([]Article, 0, limit)
	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}
		articles = append(articles, Article{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
		})
	}

	s.log.Debug("fetched news", zap.String("company", company), zap.Int("articles", len(articles)))
	return articles, nil
}
