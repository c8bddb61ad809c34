package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/cache"
	"github.com/synthapp/synth/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	newsCacheKey     = "news:all"
	defaultNewsTTL   = 30 * time.Minute
	newsFetchTimeout = 15 * time.Second
	newsProviderName = "news"
)

type NewsService struct {
	fetcher domain.NewsFetcher
	sources []domain.NewsSource
	cache   *cache.InMemoryCache[[]*domain.NewsArticle]
	ttl     time.Duration
	logger  logger.Logger
}

func NewNewsService(fetcher domain.NewsFetcher, newsCache *cache.InMemoryCache[[]*domain.NewsArticle], ttl time.Duration, logger logger.Logger) *NewsService {
	if ttl <= 0 {
		ttl = defaultNewsTTL
	}
	return &NewsService{
		fetcher: fetcher,
		sources: domain.NewsSources,
		cache:   newsCache,
		ttl:     ttl,
		logger:  logger,
	}
}

func (s *NewsService) Sources() []domain.NewsSource {
	return s.sources
}

// ListNews returns music articles from every feed, newest first, optionally
// narrowed to one source.
func (s *NewsService) ListNews(ctx context.Context, source string) ([]*domain.NewsArticle, error) {
	articles, err := s.cache.GetOrLoad(newsCacheKey, s.ttl, func() ([]*domain.NewsArticle, error) {
		return s.fetchAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return domain.FilterBySource(articles, source), nil
}

// fetchAll reads the feeds concurrently. A failing feed is skipped; the
// call only fails when every feed does.
func (s *NewsService) fetchAll(ctx context.Context) ([]*domain.NewsArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, newsFetchTimeout)
	defer cancel()

	var (
		mu       sync.Mutex
		articles []*domain.NewsArticle
		failures int
		lastErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range s.sources {
		src := src
		g.Go(func() error {
			items, err := s.fetcher.FetchSource(gctx, src)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				lastErr = err
				s.logger.WithField("source", src.Name).Warn(fmt.Sprintf("Failed to fetch news feed: %v", err))
				return nil
			}
			for _, a := range items {
				if domain.IsMusicRelated(a.Title, a.Description) {
					articles = append(articles, a)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(s.sources) > 0 && failures == len(s.sources) {
		return nil, &domain.ErrProviderUnavailable{Provider: newsProviderName, Err: lastErr}
	}

	articles = dedupeArticles(articles)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PubDate.After(articles[j].PubDate)
	})
	return articles, nil
}

func dedupeArticles(articles []*domain.NewsArticle) []*domain.NewsArticle {
	seen := make(map[string]struct{}, len(articles))
	out := make([]*domain.NewsArticle, 0, len(articles))
	for _, a := range articles {
		key := a.Link
		if key == "" {
			key = a.Source + "|" + a.Title
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
