package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/synthapp/synth/internal/domain"
)

type moderationRepository struct {
	db *sql.DB
}

// NewModerationRepository creates a new PostgreSQL moderation repository
func NewModerationRepository(db *sql.DB) domain.ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) CreateBlock(ctx context.Context, block *domain.Block) error {
	block.CreatedAt = time.Now().UTC()
	query := `
		INSERT INTO user_blocks (blocker_id, blocked_id, reason, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (blocker_id, blocked_id) DO UPDATE SET reason = EXCLUDED.reason
	`
	if _, err := r.db.ExecContext(ctx, query, block.BlockerID, block.BlockedID, block.Reason, block.CreatedAt); err != nil {
		return fmt.Errorf("failed to block user: %w", err)
	}
	return nil
}

func (r *moderationRepository) DeleteBlock(ctx context.Context, blockerID string, blockedID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_blocks WHERE blocker_id = $1 AND blocked_id = $2`, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("failed to unblock user: %w", err)
	}
	return nil
}

func (r *moderationRepository) IsBlocked(ctx context.Context, userID string, otherID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM user_blocks
			WHERE (blocker_id = $1 AND blocked_id = $2) OR (blocker_id = $2 AND blocked_id = $1)
		)
	`
	var blocked bool
	if err := r.db.QueryRowContext(ctx, query, userID, otherID).Scan(&blocked); err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return blocked, nil
}

func (r *moderationRepository) ListBlocked(ctx context.Context, userID string) ([]*domain.Block, error) {
	query := `
		SELECT b.blocker_id, b.blocked_id, b.reason, b.created_at, COALESCE(p.name, '')
		FROM user_blocks b
		LEFT JOIN profiles p ON p.user_id = b.blocked_id
		WHERE b.blocker_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}
	defer rows.Close()

	blocks := []*domain.Block{}
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.BlockerID, &b.BlockedID, &b.Reason, &b.CreatedAt, &b.BlockedName); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, &b)
	}
	return blocks, rows.Err()
}

func (r *moderationRepository) CreateReport(ctx context.Context, report *domain.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	report.Status = domain.ReportStatusPending
	report.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO reports (id, reporter_id, content_type, content_id, reason, details, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.ReporterID,
		string(report.ContentType),
		report.ContentID,
		report.Reason,
		report.Details,
		string(report.Status),
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}
