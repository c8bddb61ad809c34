package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/cache"
	"github.com/synthapp/synth/pkg/logger"
)

func setupNewsTest(t *testing.T) (*NewsService, *mocks.MockNewsFetcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fetcher := mocks.NewMockNewsFetcher(ctrl)
	c := cache.NewInMemoryCache[[]*domain.NewsArticle](time.Minute)
	t.Cleanup(c.Stop)
	return NewNewsService(fetcher, c, 0, logger.NewMockLogger(t)), fetcher
}

func TestNewsService_ListNews(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("merges feeds, filters and sorts newest first", func(t *testing.T) {
		svc, fetcher := setupNewsTest(t)
		fetcher.EXPECT().FetchSource(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, src domain.NewsSource) ([]*domain.NewsArticle, error) {
			switch src.Name {
			case "pitchfork":
				return []*domain.NewsArticle{
					{Title: "New album announced", Link: "p1", Source: "Pitchfork", PubDate: day.Add(2 * time.Hour)},
					{Title: "Best video game of the year", Link: "p2", Source: "Pitchfork", PubDate: day.Add(3 * time.Hour)},
				}, nil
			case "nme":
				return []*domain.NewsArticle{
					{Title: "Band adds tour dates", Link: "n1", Source: "NME", PubDate: day.Add(5 * time.Hour)},
				}, nil
			case "billboard":
				return nil, errors.New("timeout")
			}
			return nil, nil
		}).Times(len(domain.NewsSources))

		articles, err := svc.ListNews(ctx, "all")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "n1", articles[0].Link)
		assert.Equal(t, "p1", articles[1].Link)

		// cached: the fetcher is not called again
		filtered, err := svc.ListNews(ctx, "pitchfork")
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "Pitchfork", filtered[0].Source)

		unknown, err := svc.ListNews(ctx, "spin")
		require.NoError(t, err)
		assert.Len(t, unknown, 2)
	})

	t.Run("every feed failing", func(t *testing.T) {
		svc, fetcher := setupNewsTest(t)
		fetcher.EXPECT().FetchSource(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline")).Times(len(domain.NewsSources))

		_, err := svc.ListNews(ctx, "all")
		var unavailable *domain.ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavailable)
	})
}

func TestNewsService_Sources(t *testing.T) {
	svc, _ := setupNewsTest(t)
	assert.Len(t, svc.Sources(), 4)
}
