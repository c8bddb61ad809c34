package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/lib/pq"

	"github.com/synthapp/synth/internal/domain"
)

var profileColumns = []string{
	"user_id", "email", "name", "username", "username_changed_at", "bio", "avatar_url", "birthday", "gender",
	"location_city", "location_state", "account_type", "streaming_connected",
	"verified", "trust_score", "verification_criteria", "verified_at", "verified_by",
	"created_at", "updated_at",
}

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{db: db}
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		p          domain.Profile
		email      sql.NullString
		username   sql.NullString
		changedAt  sql.NullTime
		birthday   sql.NullTime
		criteria   []byte
		verifiedAt sql.NullTime
		verifiedBy sql.NullString
	)
	err := row.Scan(
		&p.UserID,
		&email,
		&p.Name,
		&username,
		&changedAt,
		&p.Bio,
		&p.AvatarURL,
		&birthday,
		&p.Gender,
		&p.LocationCity,
		&p.LocationState,
		&p.AccountType,
		&p.StreamingConnected,
		&p.Verified,
		&p.TrustScore,
		&criteria,
		&verifiedAt,
		&verifiedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Email = email.String
	p.Username = stringPtr(username)
	p.UsernameChangedAt = timePtr(changedAt)
	p.Birthday = timePtr(birthday)
	p.VerifiedAt = timePtr(verifiedAt)
	p.VerifiedBy = stringPtr(verifiedBy)
	if len(criteria) > 0 {
		var c domain.TrustCriteria
		if err := json.Unmarshal(criteria, &c); err != nil {
			return nil, fmt.Errorf("failed to decode verification criteria: %w", err)
		}
		p.VerificationCriteria = &c
	}
	return &p, nil
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, columnList(profileColumns))
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("profile", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) GetProfiles(ctx context.Context, userIDs []string) ([]*domain.Profile, error) {
	if len(userIDs) == 0 {
		return []*domain.Profile{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = ANY($1)`, columnList(profileColumns))
	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0, len(userIDs))
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// CreateProfile inserts the profile unless one already exists for the user
func (r *profileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	now := time.Now().UTC()
	if profile.AccountType == "" {
		profile.AccountType = domain.AccountTypeUser
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (user_id, email, name, account_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.UserID,
		nullString(profile.Email),
		profile.Name,
		profile.AccountType,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	profile.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE profiles SET
			name = $2,
			bio = $3,
			avatar_url = $4,
			birthday = $5,
			gender = $6,
			location_city = $7,
			location_state = $8,
			streaming_connected = $9,
			updated_at = $10
		WHERE user_id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Bio,
		profile.AvatarURL,
		nullTime(profile.Birthday),
		profile.Gender,
		profile.LocationCity,
		profile.LocationState,
		profile.StreamingConnected,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("profile", profile.UserID))
}

func (r *profileRepository) UsernameTaken(ctx context.Context, username string, excludeUserID string) (bool, error) {
	var taken bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM profiles WHERE username = $1 AND user_id::text <> $2)`,
		username, excludeUserID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return taken, nil
}

// ListUsernamesWithPrefix expects prefix to hold letters and digits only
func (r *profileRepository) ListUsernamesWithPrefix(ctx context.Context, prefix string, excludeUserID string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username FROM profiles
		WHERE username LIKE $1 AND user_id::text <> $2
		ORDER BY username
		LIMIT $3
	`, prefix+"%", excludeUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list usernames: %w", err)
	}
	defer rows.Close()

	usernames := []string{}
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		usernames = append(usernames, username)
	}
	return usernames, rows.Err()
}

func (r *profileRepository) UpdateUsername(ctx context.Context, userID string, username string, changedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET username = $2, username_changed_at = $3, updated_at = $3
		WHERE user_id = $1
	`, userID, username, changedAt)
	if isUniqueViolation(err) {
		return &domain.ErrConflict{Message: "this username is already taken"}
	}
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	return rowsAffectedOrNotFound(result, domain.NewNotFound("profile", userID))
}
