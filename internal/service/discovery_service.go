package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/tracing"
)

// DiscoveryService fronts the third-party event APIs and feeds results into
// the local catalog.
type DiscoveryService struct {
	ticketmaster domain.TicketmasterClient
	jambase      domain.JamBaseClient
	setlists     domain.SetlistClient
	events       domain.EventService
	eventRepo    domain.EventRepository
	logger       logger.Logger
}

func NewDiscoveryService(
	ticketmaster domain.TicketmasterClient,
	jambase domain.JamBaseClient,
	setlists domain.SetlistClient,
	events domain.EventService,
	eventRepo domain.EventRepository,
	logger logger.Logger,
) *DiscoveryService {
	return &DiscoveryService{
		ticketmaster: ticketmaster,
		jambase:      jambase,
		setlists:     setlists,
		events:       events,
		eventRepo:    eventRepo,
		logger:       logger,
	}
}

func (s *DiscoveryService) TicketmasterEvents(ctx context.Context, query *domain.TicketmasterQuery) (*domain.ProviderEventsResult, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "DiscoveryService", "TicketmasterEvents")
	defer tracing.EndSpan(span, nil)

	result, err := s.ticketmaster.SearchEvents(ctx, query)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, s.providerError(domain.ProviderTicketmaster, err)
	}

	if query.Persist && len(result.Events) > 0 {
		result.Persisted = s.persist(ctx, domain.ProviderTicketmaster, result.Events)
	}
	return result, nil
}

// JamBaseEvents answers artist searches from the catalog when it already
// holds upcoming shows for the artist and calls JamBase otherwise.
func (s *DiscoveryService) JamBaseEvents(ctx context.Context, query *domain.JamBaseQuery) (*domain.ProviderEventsResult, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "DiscoveryService", "JamBaseEvents")
	defer tracing.EndSpan(span, nil)

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 {
		query.PerPage = 20
	}

	if query.ArtistName != "" {
		stored, err := s.eventRepo.SearchEvents(ctx, &domain.EventFilter{
			Artist: query.ArtistName,
			Limit:  query.PerPage,
			Offset: (query.Page - 1) * query.PerPage,
		})
		if err != nil {
			s.logger.WithField("artist", query.ArtistName).Warn(fmt.Sprintf("Catalog lookup before JamBase failed: %v", err))
		} else if len(stored) > 0 {
			tracing.AddAttribute(ctx, "source", "catalog")
			return &domain.ProviderEventsResult{
				Events: stored,
				Total:  len(stored),
				Page:   query.Page,
				Size:   query.PerPage,
			}, nil
		}
	}

	events, err := s.jambase.SearchEvents(ctx, query)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, s.providerError(domain.ProviderJamBase, err)
	}

	result := &domain.ProviderEventsResult{
		Events: events,
		Total:  len(events),
		Page:   query.Page,
		Size:   query.PerPage,
	}
	if query.Persist && len(events) > 0 {
		result.Persisted = s.persist(ctx, domain.ProviderJamBase, events)
	}
	return result, nil
}

func (s *DiscoveryService) SearchSetlists(ctx context.Context, query *domain.SetlistQuery) ([]*domain.Setlist, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "DiscoveryService", "SearchSetlists")
	defer tracing.EndSpan(span, nil)

	if query.Date != "" {
		date, ok := domain.SetlistDate(query.Date)
		if !ok {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid date %q", query.Date))
		}
		query.Date = date
	}

	setlists, err := s.setlists.SearchSetlists(ctx, query)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, s.providerError(domain.ProviderSetlistFM, err)
	}
	return setlists, nil
}

// persist writes provider events to the catalog. Failures never fail the
// proxied request.
func (s *DiscoveryService) persist(ctx context.Context, source string, events []*domain.Event) int {
	result, err := s.events.UpsertEvents(ctx, source, events)
	if err != nil {
		s.logger.WithField("source", source).Warn(fmt.Sprintf("Failed to persist provider events: %v", err))
		return 0
	}
	if result.Failed > 0 {
		s.logger.WithFields(map[string]interface{}{
			"source":   source,
			"upserted": result.Upserted,
			"failed":   result.Failed,
		}).Warn("Some provider events were not persisted")
	}
	return result.Upserted
}

func (s *DiscoveryService) providerError(provider string, err error) error {
	var unavailable *domain.ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		return err
	}
	var verr domain.ValidationError
	if errors.As(err, &verr) {
		return err
	}
	s.logger.WithField("provider", provider).Error(fmt.Sprintf("Provider request failed: %v", err))
	return &domain.ErrProviderUnavailable{Provider: provider, Err: err}
}
