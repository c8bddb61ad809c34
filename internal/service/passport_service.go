package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/citynorm"
	"github.com/synthapp/synth/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	passportRecalcWorkers   = 4
	syntheticTimelinePrefix = "review-"
)

type PassportService struct {
	repo     domain.PassportRepository
	profiles domain.ProfileRepository
	events   domain.EventRepository
	reviews  domain.ReviewRepository
	logger   logger.Logger
	now      func() time.Time
}

func NewPassportService(
	repo domain.PassportRepository,
	profiles domain.ProfileRepository,
	events domain.EventRepository,
	reviews domain.ReviewRepository,
	logger logger.Logger,
) *PassportService {
	return &PassportService{
		repo:     repo,
		profiles: profiles,
		events:   events,
		reviews:  reviews,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *PassportService) GetProgress(ctx context.Context, userID string) (*domain.PassportProgress, error) {
	entries, err := s.repo.ListEntries(ctx, userID, "")
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list passport entries: %v", err))
		return nil, fmt.Errorf("failed to list passport entries: %w", err)
	}
	return domain.GroupProgress(entries), nil
}

// UnlockEntry stamps the passport. Unlocking an entity twice returns the
// entry stored the first time.
func (s *PassportService) UnlockEntry(ctx context.Context, userID string, req *domain.UnlockEntryRequest) (*domain.PassportEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.PassportEntry{
		UserID:     userID,
		Type:       req.Type,
		EntityID:   trimmedOrNil(req.EntityID),
		EntityUUID: trimmedOrNil(req.EntityUUID),
		EntityName: strings.TrimSpace(req.EntityName),
		Rarity:     req.Rarity,
		Metadata:   req.Metadata,
	}
	err := s.repo.InsertEntry(ctx, entry)
	if err == nil {
		return entry, nil
	}
	if !domain.IsConflict(err) {
		s.logger.WithFields(map[string]interface{}{
			"user_id": userID,
			"type":    string(req.Type),
		}).Error(fmt.Sprintf("Failed to unlock passport entry: %v", err))
		return nil, fmt.Errorf("failed to unlock passport entry: %w", err)
	}

	existing, err := s.repo.FindEntry(ctx, userID, entry.Type, entry.EntityUUID, entry.EntityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find passport entry: %w", err)
	}
	return existing, nil
}

// UnlockFromReview stamps the city, venue and artist of a reviewed event.
// Each unlock is attempted independently.
func (s *PassportService) UnlockFromReview(ctx context.Context, review *domain.Review, event *domain.Event) error {
	if review == nil || event == nil {
		return nil
	}

	metadata := domain.JSONMap{"event_id": event.ID, "review_id": review.ID}
	var requests []*domain.UnlockEntryRequest

	if city := strings.TrimSpace(event.VenueCity); city != "" {
		id := citynorm.CityID(city, event.VenueState)
		requests = append(requests, &domain.UnlockEntryRequest{
			Type:       domain.PassportCity,
			EntityID:   &id,
			EntityName: citynorm.FormatCityState(city, event.VenueState),
			Metadata:   metadata,
		})
	}
	if venueID := firstNonEmpty(event.VenueID, review.VenueID); venueID != "" && event.VenueName != "" {
		requests = append(requests, entityUnlock(domain.PassportVenue, venueID, event.VenueName, metadata))
	}
	if artistID := firstNonEmpty(event.ArtistID, review.ArtistID); artistID != "" && event.ArtistName != "" {
		requests = append(requests, entityUnlock(domain.PassportArtist, artistID, event.ArtistName, metadata))
	}

	var errs []error
	for _, req := range requests {
		if _, err := s.UnlockEntry(ctx, review.UserID, req); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", req.Type, err))
		}
	}
	return errors.Join(errs...)
}

// entityUnlock stores uuid identifiers in entity_uuid and provider ids in entity_id
func entityUnlock(entryType domain.PassportEntryType, entityID, name string, metadata domain.JSONMap) *domain.UnlockEntryRequest {
	req := &domain.UnlockEntryRequest{Type: entryType, EntityName: name, Metadata: metadata}
	id := entityID
	if govalidator.IsUUID(id) {
		req.EntityUUID = &id
	} else {
		req.EntityID = &id
	}
	return req
}

// NextToUnlock suggests the home city when it is not stamped yet and the
// first unseen artist among upcoming events.
func (s *PassportService) NextToUnlock(ctx context.Context, userID string) ([]*domain.UnlockHint, error) {
	progress, err := s.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	hints := make([]*domain.UnlockHint, 0, domain.MaxUnlockHints)

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile != nil && strings.TrimSpace(profile.LocationCity) != "" {
		homeID := citynorm.CityID(profile.LocationCity, profile.LocationState)
		visited := false
		for _, c := range progress.Cities {
			if c.EntityID != nil && strings.ToLower(*c.EntityID) == homeID {
				visited = true
				break
			}
		}
		if !visited {
			hints = append(hints, &domain.UnlockHint{
				Type:       domain.PassportCity,
				EntityName: profile.LocationCity,
				Hint:       fmt.Sprintf("Review an event in %s to unlock this city", profile.LocationCity),
				Progress:   len(progress.Cities),
				Goal:       len(progress.Cities) + 1,
			})
		}
	}

	upcoming, err := s.events.ListUpcomingEvents(ctx, s.now(), domain.HintUpcomingEvents)
	if err != nil {
		s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Failed to list upcoming events for hints: %v", err))
		upcoming = nil
	}
	seen := make(map[string]struct{}, len(progress.Artists))
	for _, a := range progress.Artists {
		if a.EntityID != nil {
			seen[*a.EntityID] = struct{}{}
		}
		if a.EntityUUID != nil {
			seen[*a.EntityUUID] = struct{}{}
		}
	}
	for _, e := range upcoming {
		if e.ArtistID == "" {
			continue
		}
		if _, ok := seen[e.ArtistID]; ok {
			continue
		}
		name := e.ArtistName
		if name == "" {
			name = "Unknown Artist"
		}
		hints = append(hints, &domain.UnlockHint{
			Type:       domain.PassportArtist,
			EntityName: name,
			Hint:       fmt.Sprintf("Attend a show by %s to unlock this artist", name),
			Progress:   len(progress.Artists),
			Goal:       len(progress.Artists) + 1,
		})
		break
	}

	if len(hints) > domain.MaxUnlockHints {
		hints = hints[:domain.MaxUnlockHints]
	}
	return hints, nil
}

// GetIdentity returns the stored identity, calculating it on first access.
func (s *PassportService) GetIdentity(ctx context.Context, userID string) (*domain.PassportIdentity, error) {
	identity, err := s.repo.GetIdentity(ctx, userID)
	if err == nil {
		return identity, nil
	}
	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get passport identity: %w", err)
	}
	return s.Recalculate(ctx, userID)
}

// Recalculate rebuilds the taste map and derives the identity from it.
func (s *PassportService) Recalculate(ctx context.Context, userID string) (*domain.PassportIdentity, error) {
	tasteMap, err := s.recalculateTasteMap(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := s.now()
	identity := &domain.PassportIdentity{
		UserID:       userID,
		FanType:      tasteMap.FanType,
		JoinYear:     profile.CreatedAt.Year(),
		CalculatedAt: now,
		UpdatedAt:    now,
	}
	if strings.TrimSpace(profile.LocationCity) != "" {
		homeID := citynorm.CityID(profile.LocationCity, profile.LocationState)
		identity.HomeSceneID = &homeID
		identity.HomeCity = citynorm.FormatCityState(profile.LocationCity, profile.LocationState)
	}
	if profile.CreatedAt.IsZero() {
		identity.JoinYear = now.Year()
	}

	if err := s.repo.UpsertIdentity(ctx, identity); err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to save passport identity: %v", err))
		return nil, fmt.Errorf("failed to save passport identity: %w", err)
	}
	return identity, nil
}

// RecalculateAll refreshes the identity of every given user. Individual
// failures are counted and do not stop the run.
func (s *PassportService) RecalculateAll(ctx context.Context, userIDs []string) (updated int, failed int, err error) {
	var ok, ko int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(passportRecalcWorkers)
	for _, id := range userIDs {
		id := id
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if _, err := s.Recalculate(gctx, id); err != nil {
				s.logger.WithField("user_id", id).Warn(fmt.Sprintf("Passport recalculation failed: %v", err))
				atomic.AddInt64(&ko, 1)
				return nil
			}
			atomic.AddInt64(&ok, 1)
			return nil
		})
	}
	err = g.Wait()
	return int(ok), int(ko), err
}

func (s *PassportService) GetStamps(ctx context.Context, userID string, rarity domain.Rarity) ([]*domain.PassportEntry, error) {
	if rarity != "" && !rarity.Valid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unsupported rarity %q", rarity))
	}
	entries, err := s.repo.ListEntries(ctx, userID, rarity)
	if err != nil {
		return nil, fmt.Errorf("failed to list stamps: %w", err)
	}
	return entries, nil
}

func (s *PassportService) GetTimeline(ctx context.Context, userID string) ([]*domain.TimelineEntry, error) {
	records, err := s.repo.ListTimelineRecords(ctx, userID, domain.TimelineLimit)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to load timeline: %v", err))
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}
	return domain.BuildTimeline(records), nil
}

func (s *PassportService) PinTimelineEvent(ctx context.Context, userID string, reviewID string) (*domain.TimelineMilestone, error) {
	if reviewID == "" {
		return nil, domain.NewValidationError("review_id is required")
	}
	if _, err := s.ownedReview(ctx, userID, reviewID); err != nil {
		return nil, err
	}

	pinned, err := s.repo.CountPinned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pinned entries: %w", err)
	}
	if pinned >= domain.MaxPinnedTimeline {
		return nil, domain.NewValidationError(fmt.Sprintf("at most %d timeline events can be pinned", domain.MaxPinnedTimeline))
	}

	milestone, err := s.repo.PinReview(ctx, userID, reviewID)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   userID,
			"review_id": reviewID,
		}).Error(fmt.Sprintf("Failed to pin timeline event: %v", err))
		return nil, fmt.Errorf("failed to pin timeline event: %w", err)
	}
	return milestone, nil
}

// UnpinTimelineEvent clears the pin. Auto selected entries have no stored
// row and are never pinned.
func (s *PassportService) UnpinTimelineEvent(ctx context.Context, userID string, timelineID string) error {
	if strings.HasPrefix(timelineID, syntheticTimelinePrefix) {
		return nil
	}
	if err := s.repo.SetPinned(ctx, userID, timelineID, false); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to unpin timeline event: %w", err)
	}
	return nil
}

func (s *PassportService) AddMilestone(ctx context.Context, userID string, req *domain.MilestoneRequest) (*domain.TimelineMilestone, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	reviewID := req.ReviewID
	if reviewID == "" {
		reviewID = strings.TrimPrefix(req.TimelineID, syntheticTimelinePrefix)
	}

	review, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	significance := req.Significance
	milestone, err := s.repo.UpsertMilestone(ctx, &domain.TimelineMilestone{
		UserID:       userID,
		ReviewID:     review.ID,
		Significance: &significance,
		Description:  req.Description,
		EventName:    s.milestoneEventName(ctx, review),
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   userID,
			"review_id": review.ID,
		}).Error(fmt.Sprintf("Failed to add milestone: %v", err))
		return nil, fmt.Errorf("failed to add milestone: %w", err)
	}
	return milestone, nil
}

// UpdateMilestone edits a stored milestone. Auto selected entries are
// turned into stored milestones first.
func (s *PassportService) UpdateMilestone(ctx context.Context, userID string, req *domain.MilestoneRequest) (*domain.TimelineMilestone, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.TimelineID == "" || strings.HasPrefix(req.TimelineID, syntheticTimelinePrefix) {
		return s.AddMilestone(ctx, userID, req)
	}

	milestone, err := s.repo.UpdateMilestone(ctx, userID, req.TimelineID, req.Significance, req.Description)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}
	return milestone, nil
}

func (s *PassportService) DeleteTimelineEntry(ctx context.Context, userID string, timelineID string) error {
	if strings.HasPrefix(timelineID, syntheticTimelinePrefix) {
		return domain.NewValidationError("auto selected timeline entries cannot be deleted")
	}
	if err := s.repo.DeleteTimelineEntry(ctx, userID, timelineID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete timeline entry: %w", err)
	}
	return nil
}

// GetTasteMap returns the stored taste map, calculating it when missing.
func (s *PassportService) GetTasteMap(ctx context.Context, userID string) (*domain.TasteMap, error) {
	tasteMap, err := s.repo.GetTasteMap(ctx, userID)
	if err == nil {
		return tasteMap, nil
	}
	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get taste map: %w", err)
	}
	return s.recalculateTasteMap(ctx, userID)
}

func (s *PassportService) recalculateTasteMap(ctx context.Context, userID string) (*domain.TasteMap, error) {
	signals, err := s.repo.ListTasteSignals(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to load taste signals: %v", err))
		return nil, fmt.Errorf("failed to load taste signals: %w", err)
	}

	entries, err := s.repo.ListEntries(ctx, userID, "")
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to load passport entries: %v", err))
		return nil, fmt.Errorf("failed to load passport entries: %w", err)
	}

	tasteMap := domain.CalculateTasteMap(userID, signals, entries, s.now())
	if err := s.repo.UpsertTasteMap(ctx, tasteMap); err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to save taste map: %v", err))
		return nil, fmt.Errorf("failed to save taste map: %w", err)
	}
	return tasteMap, nil
}

func (s *PassportService) ownedReview(ctx context.Context, userID string, reviewID string) (*domain.Review, error) {
	review, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return review, nil
}

// milestoneEventName prefers the names joined on the review and falls back
// to the event row.
func (s *PassportService) milestoneEventName(ctx context.Context, review *domain.Review) *string {
	artist, venue := review.ArtistName, review.VenueName
	if artist == "" && venue == "" && review.EventID != "" {
		event, err := s.events.GetEvent(ctx, review.EventID)
		if err != nil {
			s.logger.WithField("event_id", review.EventID).Debug(fmt.Sprintf("Event lookup for milestone failed: %v", err))
			return nil
		}
		artist, venue = event.ArtistName, event.VenueName
	}
	return domain.TimelineEventName(artist, venue)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
