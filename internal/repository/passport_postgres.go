package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/synthapp/synth/internal/domain"
)

var passportEntryColumns = []string{
	"id", "user_id", "type", "entity_id", "entity_uuid", "entity_name", "unlocked_at", "metadata", "rarity",
}

var milestoneColumns = []string{
	"id", "user_id", "review_id", "is_pinned", "is_auto_selected", "significance",
	"description", "event_name", "created_at", "updated_at",
}

type passportRepository struct {
	db *sql.DB
}

// NewPassportRepository creates a new PostgreSQL passport repository
func NewPassportRepository(db *sql.DB) domain.PassportRepository {
	return &passportRepository{db: db}
}

func scanPassportEntry(row rowScanner) (*domain.PassportEntry, error) {
	var (
		e          domain.PassportEntry
		entityID   sql.NullString
		entityUUID sql.NullString
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Type, &entityID, &entityUUID, &e.EntityName, &e.UnlockedAt, &e.Metadata, &e.Rarity)
	if err != nil {
		return nil, err
	}
	e.EntityID = stringPtr(entityID)
	e.EntityUUID = stringPtr(entityUUID)
	return &e, nil
}

func scanMilestone(row rowScanner) (*domain.TimelineMilestone, error) {
	var (
		m            domain.TimelineMilestone
		significance sql.NullString
		description  sql.NullString
		eventName    sql.NullString
	)
	err := row.Scan(&m.ID, &m.UserID, &m.ReviewID, &m.IsPinned, &m.IsAutoSelected,
		&significance, &description, &eventName, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Significance = stringPtr(significance)
	m.Description = stringPtr(description)
	m.EventName = stringPtr(eventName)
	return &m, nil
}

// InsertEntry reports an already unlocked entity as ErrConflict
func (r *passportRepository) InsertEntry(ctx context.Context, entry *domain.PassportEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Rarity == "" {
		entry.Rarity = domain.RarityCommon
	}
	if entry.Metadata == nil {
		entry.Metadata = domain.JSONMap{}
	}
	entry.UnlockedAt = time.Now().UTC()

	query := fmt.Sprintf(`INSERT INTO passport_entries (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		columnList(passportEntryColumns))
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		string(entry.Type),
		nullStringPtr(entry.EntityID),
		nullStringPtr(entry.EntityUUID),
		entry.EntityName,
		entry.UnlockedAt,
		entry.Metadata,
		string(entry.Rarity),
	)
	if isUniqueViolation(err) {
		return &domain.ErrConflict{Message: "passport entry already unlocked"}
	}
	if err != nil {
		return fmt.Errorf("failed to insert passport entry: %w", err)
	}
	return nil
}

// FindEntry prefers the entity uuid and falls back to the entity id
func (r *passportRepository) FindEntry(ctx context.Context, userID string, entryType domain.PassportEntryType, entityUUID *string, entityID *string) (*domain.PassportEntry, error) {
	qb := psql.Select(passportEntryColumns...).
		From("passport_entries").
		Where(sq.Eq{"user_id": userID, "type": string(entryType)}).
		Limit(1)
	switch {
	case entityUUID != nil && *entityUUID != "":
		qb = qb.Where(sq.Eq{"entity_uuid": *entityUUID})
	case entityID != nil && *entityID != "":
		qb = qb.Where(sq.Eq{"entity_id": *entityID})
	default:
		return nil, domain.NewValidationError("entity_id or entity_uuid is required")
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	entry, err := scanPassportEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("passport entry", string(entryType))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find passport entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns every entry of the user when rarity is empty
func (r *passportRepository) ListEntries(ctx context.Context, userID string, rarity domain.Rarity) ([]*domain.PassportEntry, error) {
	qb := psql.Select(passportEntryColumns...).
		From("passport_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("unlocked_at DESC")
	if rarity != "" {
		qb = qb.Where(sq.Eq{"rarity": string(rarity)})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list passport entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.PassportEntry{}
	for rows.Next() {
		entry, err := scanPassportEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan passport entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *passportRepository) GetIdentity(ctx context.Context, userID string) (*domain.PassportIdentity, error) {
	query := `
		SELECT user_id, fan_type, home_scene_id, home_city, join_year, calculated_at, updated_at
		FROM passport_identity
		WHERE user_id = $1
	`
	var (
		id        domain.PassportIdentity
		fanType   sql.NullString
		homeScene sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&id.UserID, &fanType, &homeScene, &id.HomeCity, &id.JoinYear, &id.CalculatedAt, &id.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("passport identity", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get passport identity: %w", err)
	}
	id.FanType = fanTypePtr(fanType)
	id.HomeSceneID = stringPtr(homeScene)
	return &id, nil
}

func (r *passportRepository) UpsertIdentity(ctx context.Context, identity *domain.PassportIdentity) error {
	now := time.Now().UTC()
	identity.CalculatedAt = now
	identity.UpdatedAt = now

	query := `
		INSERT INTO passport_identity (user_id, fan_type, home_scene_id, home_city, join_year, calculated_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			fan_type = EXCLUDED.fan_type,
			home_scene_id = EXCLUDED.home_scene_id,
			home_city = EXCLUDED.home_city,
			join_year = EXCLUDED.join_year,
			calculated_at = EXCLUDED.calculated_at,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		identity.UserID,
		nullFanType(identity.FanType),
		nullStringPtr(identity.HomeSceneID),
		identity.HomeCity,
		identity.JoinYear,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert passport identity: %w", err)
	}
	return nil
}

// ListTimelineRecords joins published reviews with their milestone rows,
// most recent event first
func (r *passportRepository) ListTimelineRecords(ctx context.Context, userID string, limit int) ([]*domain.TimelineRecord, error) {
	query := `
		SELECT rv.id, rv.rating, rv.review_text, rv.event_id, COALESCE(rv.event_date, e.event_date),
			COALESCE(e.artist_name, ''), COALESCE(e.venue_name, ''), rv.created_at,
			t.id, t.is_pinned, t.is_auto_selected, t.significance, t.description, t.event_name,
			t.created_at, t.updated_at
		FROM reviews rv
		LEFT JOIN events e ON e.id = rv.event_id
		LEFT JOIN passport_timeline t ON t.review_id = rv.id AND t.user_id = rv.user_id
		WHERE rv.user_id = $1 AND rv.is_draft = FALSE
		ORDER BY COALESCE(rv.event_date, e.event_date, rv.created_at) DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	defer rows.Close()

	records := []*domain.TimelineRecord{}
	for rows.Next() {
		var (
			rec          domain.TimelineRecord
			eventDate    sql.NullTime
			milestoneID  sql.NullString
			pinned       sql.NullBool
			autoSelected sql.NullBool
			significance sql.NullString
			description  sql.NullString
			eventName    sql.NullString
			createdAt    sql.NullTime
			updatedAt    sql.NullTime
		)
		err := rows.Scan(
			&rec.ReviewID, &rec.Rating, &rec.ReviewText, &rec.EventID, &eventDate,
			&rec.ArtistName, &rec.VenueName, &rec.ReviewCreatedAt,
			&milestoneID, &pinned, &autoSelected, &significance, &description, &eventName,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline record: %w", err)
		}
		rec.EventDate = timePtr(eventDate)
		if milestoneID.Valid {
			rec.Milestone = &domain.TimelineMilestone{
				ID:             milestoneID.String,
				UserID:         userID,
				ReviewID:       rec.ReviewID,
				IsPinned:       pinned.Bool,
				IsAutoSelected: autoSelected.Bool,
				Significance:   stringPtr(significance),
				Description:    stringPtr(description),
				EventName:      stringPtr(eventName),
				CreatedAt:      createdAt.Time,
				UpdatedAt:      updatedAt.Time,
			}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *passportRepository) CountPinned(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM passport_timeline WHERE user_id = $1 AND is_pinned = TRUE`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pinned timeline entries: %w", err)
	}
	return count, nil
}

func (r *passportRepository) PinReview(ctx context.Context, userID string, reviewID string) (*domain.TimelineMilestone, error) {
	now := time.Now().UTC()
	query := fmt.Sprintf(`
		INSERT INTO passport_timeline (id, user_id, review_id, is_pinned, is_auto_selected, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, FALSE, $4, $4)
		ON CONFLICT (user_id, review_id) DO UPDATE SET is_pinned = TRUE, updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, columnList(milestoneColumns))
	m, err := scanMilestone(r.db.QueryRowContext(ctx, query, uuid.New().String(), userID, reviewID, now))
	if err != nil {
		return nil, fmt.Errorf("failed to pin timeline entry: %w", err)
	}
	return m, nil
}

func (r *passportRepository) SetPinned(ctx context.Context, userID string, timelineID string, pinned bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE passport_timeline SET is_pinned = $3, updated_at = $4 WHERE id = $1 AND user_id = $2`,
		timelineID, userID, pinned, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update pinned state: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("timeline entry", timelineID))
}

// UpsertMilestone writes the milestone of a review. An existing row keeps
// its pinned state and stored event name when none is given.
func (r *passportRepository) UpsertMilestone(ctx context.Context, milestone *domain.TimelineMilestone) (*domain.TimelineMilestone, error) {
	if milestone.ID == "" {
		milestone.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	query := fmt.Sprintf(`
		INSERT INTO passport_timeline (
			id, user_id, review_id, is_pinned, is_auto_selected, significance, description, event_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7, $8, $8)
		ON CONFLICT (user_id, review_id) DO UPDATE SET
			is_auto_selected = FALSE,
			significance = EXCLUDED.significance,
			description = EXCLUDED.description,
			event_name = COALESCE(EXCLUDED.event_name, passport_timeline.event_name),
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, columnList(milestoneColumns))
	m, err := scanMilestone(r.db.QueryRowContext(ctx, query,
		milestone.ID,
		milestone.UserID,
		milestone.ReviewID,
		milestone.IsPinned,
		nullStringPtr(milestone.Significance),
		nullStringPtr(milestone.Description),
		nullStringPtr(milestone.EventName),
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert milestone: %w", err)
	}
	return m, nil
}

func (r *passportRepository) UpdateMilestone(ctx context.Context, userID string, timelineID string, significance string, description *string) (*domain.TimelineMilestone, error) {
	query := fmt.Sprintf(`
		UPDATE passport_timeline SET significance = $3, description = $4, is_auto_selected = FALSE, updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, columnList(milestoneColumns))
	m, err := scanMilestone(r.db.QueryRowContext(ctx, query,
		timelineID, userID, significance, nullStringPtr(description), time.Now().UTC()))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("timeline entry", timelineID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}
	return m, nil
}

func (r *passportRepository) DeleteTimelineEntry(ctx context.Context, userID string, timelineID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM passport_timeline WHERE id = $1 AND user_id = $2`, timelineID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete timeline entry: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("timeline entry", timelineID))
}

func (r *passportRepository) GetTasteMap(ctx context.Context, userID string) (*domain.TasteMap, error) {
	query := `
		SELECT user_id, genres, artists, fan_type, event_count, calculated_at
		FROM passport_taste_map
		WHERE user_id = $1
	`
	var (
		tm      domain.TasteMap
		fanType sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&tm.UserID, &tm.Genres, &tm.Artists, &fanType, &tm.EventCount, &tm.CalculatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("taste map", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get taste map: %w", err)
	}
	tm.FanType = fanTypePtr(fanType)
	return &tm, nil
}

func (r *passportRepository) UpsertTasteMap(ctx context.Context, tm *domain.TasteMap) error {
	query := `
		INSERT INTO passport_taste_map (user_id, genres, artists, fan_type, event_count, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			genres = EXCLUDED.genres,
			artists = EXCLUDED.artists,
			fan_type = EXCLUDED.fan_type,
			event_count = EXCLUDED.event_count,
			calculated_at = EXCLUDED.calculated_at
	`
	_, err := r.db.ExecContext(ctx, query, tm.UserID, tm.Genres, tm.Artists, nullFanType(tm.FanType), tm.EventCount, tm.CalculatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert taste map: %w", err)
	}
	return nil
}

// ListTasteSignals returns published reviews plus interests in events the
// user has not reviewed
func (r *passportRepository) ListTasteSignals(ctx context.Context, userID string) ([]*domain.TasteSignal, error) {
	query := `
		SELECT 'review', e.id, e.artist_name, e.venue_id, e.venue_name, e.venue_city, e.venue_state, e.genres, rv.rating, rv.was_there
		FROM reviews rv
		JOIN events e ON e.id = rv.event_id
		WHERE rv.user_id = $1 AND rv.is_draft = FALSE
		UNION ALL
		SELECT 'interest', e.id, e.artist_name, e.venue_id, e.venue_name, e.venue_city, e.venue_state, e.genres, 0, FALSE
		FROM event_interests ei
		JOIN events e ON e.id = ei.event_id
		WHERE ei.user_id = $1
			AND NOT EXISTS (
				SELECT 1 FROM reviews rv
				WHERE rv.user_id = ei.user_id AND rv.event_id = ei.event_id AND rv.is_draft = FALSE
			)
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list taste signals: %w", err)
	}
	defer rows.Close()

	signals := []*domain.TasteSignal{}
	for rows.Next() {
		var (
			s      domain.TasteSignal
			genres pq.StringArray
		)
		if err := rows.Scan(&s.Kind, &s.EventID, &s.ArtistName, &s.VenueID, &s.VenueName, &s.VenueCity, &s.VenueState, &genres, &s.Rating, &s.WasThere); err != nil {
			return nil, fmt.Errorf("failed to scan taste signal: %w", err)
		}
		s.Genres = []string(genres)
		signals = append(signals, &s)
	}
	return signals, rows.Err()
}

func fanTypePtr(ns sql.NullString) *domain.FanType {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return domain.FanType(ns.String).Ptr()
}

func nullFanType(f *domain.FanType) sql.NullString {
	if f == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*f), Valid: true}
}
