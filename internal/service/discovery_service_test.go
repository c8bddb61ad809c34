package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/domain/mocks"
	"github.com/synthapp/synth/pkg/logger"
)

type discoveryMocks struct {
	ticketmaster *mocks.MockTicketmasterClient
	jambase      *mocks.MockJamBaseClient
	setlists     *mocks.MockSetlistClient
	events       *mocks.MockEventService
	eventRepo    *mocks.MockEventRepository
}

func setupDiscoveryTest(t *testing.T) (*DiscoveryService, discoveryMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := discoveryMocks{
		ticketmaster: mocks.NewMockTicketmasterClient(ctrl),
		jambase:      mocks.NewMockJamBaseClient(ctrl),
		setlists:     mocks.NewMockSetlistClient(ctrl),
		events:       mocks.NewMockEventService(ctrl),
		eventRepo:    mocks.NewMockEventRepository(ctrl),
	}
	svc := NewDiscoveryService(m.ticketmaster, m.jambase, m.setlists, m.events, m.eventRepo, logger.NewMockLogger(t))
	return svc, m
}

func TestDiscoveryService_TicketmasterEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("persists returned events", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		query := &domain.TicketmasterQuery{City: "Austin", Persist: true}
		events := []*domain.Event{{Title: "A"}, {Title: "B"}}
		m.ticketmaster.EXPECT().SearchEvents(gomock.Any(), query).Return(&domain.ProviderEventsResult{Events: events, Total: 2}, nil)
		m.events.EXPECT().UpsertEvents(gomock.Any(), domain.ProviderTicketmaster, events).Return(&domain.UpsertResult{Upserted: 2}, nil)

		result, err := svc.TicketmasterEvents(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Persisted)
	})

	t.Run("persist failure still returns events", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		query := &domain.TicketmasterQuery{Persist: true}
		m.ticketmaster.EXPECT().SearchEvents(gomock.Any(), query).Return(&domain.ProviderEventsResult{Events: []*domain.Event{{Title: "A"}}}, nil)
		m.events.EXPECT().UpsertEvents(gomock.Any(), domain.ProviderTicketmaster, gomock.Len(1)).Return(nil, errors.New("db down"))

		result, err := svc.TicketmasterEvents(ctx, query)
		require.NoError(t, err)
		assert.Len(t, result.Events, 1)
		assert.Equal(t, 0, result.Persisted)
	})

	t.Run("upstream failure becomes provider unavailable", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		m.ticketmaster.EXPECT().SearchEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("502"))

		_, err := svc.TicketmasterEvents(ctx, &domain.TicketmasterQuery{})
		var unavailable *domain.ErrProviderUnavailable
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, domain.ProviderTicketmaster, unavailable.Provider)
	})
}

func TestDiscoveryService_JamBaseEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog hit skips upstream", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		m.eventRepo.EXPECT().SearchEvents(gomock.Any(), &domain.EventFilter{Artist: "Goose", Limit: 20, Offset: 0}).
			Return([]*domain.Event{{Title: "Goose"}}, nil)

		result, err := svc.JamBaseEvents(ctx, &domain.JamBaseQuery{ArtistName: "Goose"})
		require.NoError(t, err)
		assert.Len(t, result.Events, 1)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("catalog miss calls jambase and persists", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		query := &domain.JamBaseQuery{ArtistName: "Goose", Page: 2, PerPage: 10, Persist: true}
		m.eventRepo.EXPECT().SearchEvents(gomock.Any(), &domain.EventFilter{Artist: "Goose", Limit: 10, Offset: 10}).Return(nil, nil)
		m.jambase.EXPECT().SearchEvents(gomock.Any(), query).Return([]*domain.Event{{Title: "Goose at Red Rocks"}}, nil)
		m.events.EXPECT().UpsertEvents(gomock.Any(), domain.ProviderJamBase, gomock.Len(1)).Return(&domain.UpsertResult{Upserted: 1}, nil)

		result, err := svc.JamBaseEvents(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Persisted)
		assert.Equal(t, 2, result.Page)
	})
}

func TestDiscoveryService_SearchSetlists(t *testing.T) {
	ctx := context.Background()

	t.Run("date converted for setlist.fm", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		m.setlists.EXPECT().SearchSetlists(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q *domain.SetlistQuery) ([]*domain.Setlist, error) {
			assert.Equal(t, "14-08-2025", q.Date)
			return []*domain.Setlist{{SetlistFmID: "abc"}}, nil
		})

		setlists, err := svc.SearchSetlists(ctx, &domain.SetlistQuery{ArtistName: "Phish", Date: "2025-08-14"})
		require.NoError(t, err)
		assert.Len(t, setlists, 1)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _ := setupDiscoveryTest(t)
		_, err := svc.SearchSetlists(ctx, &domain.SetlistQuery{ArtistName: "Phish", Date: "last tuesday"})
		var verr domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unavailable passes through", func(t *testing.T) {
		svc, m := setupDiscoveryTest(t)
		unavailable := &domain.ErrProviderUnavailable{Provider: domain.ProviderSetlistFM}
		m.setlists.EXPECT().SearchSetlists(gomock.Any(), gomock.Any()).Return(nil, unavailable)

		_, err := svc.SearchSetlists(ctx, &domain.SetlistQuery{ArtistName: "Phish"})
		assert.Same(t, unavailable, err)
	})
}
