package service

import (
	"context"
	"fmt"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/geo"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/tracing"
)

type EventService struct {
	repo   domain.EventRepository
	logger logger.Logger
}

func NewEventService(repo domain.EventRepository, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("event_id", id).Error(fmt.Sprintf("Failed to get event: %v", err))
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// SearchEvents applies the SQL filters in the repository. Radius searches
// fetch the bounding box candidates, keep the ones inside the haversine
// radius and paginate afterwards.
func (s *EventService) SearchEvents(ctx context.Context, filter *domain.EventFilter) ([]*domain.Event, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "EventService", "SearchEvents")
	defer span.End()

	if err := filter.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	events, err := s.repo.SearchEvents(ctx, filter)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		s.logger.Error(fmt.Sprintf("Failed to search events: %v", err))
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	if !filter.HasRadius() {
		return events, nil
	}

	center := geo.Point{Lat: *filter.Latitude, Lng: *filter.Longitude}
	inside := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if !e.HasLocation() {
			continue
		}
		d := geo.Distance(center, geo.Point{Lat: *e.Latitude, Lng: *e.Longitude}, geo.Miles)
		if d > filter.RadiusMiles {
			continue
		}
		e.DistanceMiles = &d
		inside = append(inside, e)
	}
	tracing.AddAttribute(ctx, "events.in_radius", len(inside))

	if filter.Offset >= len(inside) {
		return []*domain.Event{}, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(inside) {
		end = len(inside)
	}
	return inside[filter.Offset:end], nil
}

// UpsertEvents imports provider events in batches keyed on the provider id.
// Invalid events and failing batches are logged, counted and skipped.
func (s *EventService) UpsertEvents(ctx context.Context, source string, events []*domain.Event) (*domain.UpsertResult, error) {
	result := &domain.UpsertResult{}
	log := s.logger.WithField("source", source)

	valid := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		e.Source = source
		if err := e.Validate(); err != nil {
			log.WithField("external_id", e.ExternalID).Warn(fmt.Sprintf("Skipping event: %v", err))
			result.Failed++
			continue
		}
		valid = append(valid, e)
	}

	for start := 0; start < len(valid); start += domain.UpsertBatchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		end := start + domain.UpsertBatchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		n, err := s.repo.UpsertEvents(ctx, batch)
		if err != nil {
			log.WithField("batch_start", start).Error(fmt.Sprintf("Failed to upsert event batch: %v", err))
			result.Failed += len(batch)
			continue
		}
		result.Upserted += n
	}

	log.WithFields(map[string]interface{}{
		"upserted": result.Upserted,
		"failed":   result.Failed,
	}).Info("Imported events")
	return result, nil
}
