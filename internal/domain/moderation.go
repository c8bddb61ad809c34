package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_moderation_service.go -package mocks github.com/synthapp/synth/internal/domain ModerationService
//go:generate mockgen -destination mocks/mock_moderation_repository.go -package mocks github.com/synthapp/synth/internal/domain ModerationRepository

type ReportContentType string

const (
	ReportContentUser    ReportContentType = "user"
	ReportContentReview  ReportContentType = "review"
	ReportContentMessage ReportContentType = "message"
	ReportContentEvent   ReportContentType = "event"
)

func (t ReportContentType) Valid() bool {
	switch t {
	case ReportContentUser, ReportContentReview, ReportContentMessage, ReportContentEvent:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusResolved ReportStatus = "resolved"
)

type Block struct {
	BlockerID string    `json:"blocker_id"`
	BlockedID string    `json:"blocked_id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	BlockedName string `json:"blocked_name,omitempty"`
}

type Report struct {
	ID          string            `json:"id"`
	ReporterID  string            `json:"reporter_id"`
	ContentType ReportContentType `json:"content_type"`
	ContentID   string            `json:"content_id"`
	Reason      string            `json:"reason"`
	Details     string            `json:"details,omitempty"`
	Status      ReportStatus      `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

type BlockRequest struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason,omitempty"`
}

func (r *BlockRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("user_id is required")
	}
	if len(r.Reason) > 500 {
		return NewValidationError("reason length must be at most 500")
	}
	return nil
}

type ReportRequest struct {
	ContentType ReportContentType `json:"content_type"`
	ContentID   string            `json:"content_id"`
	Reason      string            `json:"reason"`
	Details     string            `json:"details,omitempty"`
}

func (r *ReportRequest) Validate() error {
	if !r.ContentType.Valid() {
		return NewValidationError(fmt.Sprintf("unsupported content_type %q", r.ContentType))
	}
	if r.ContentID == "" {
		return NewValidationError("content_id is required")
	}
	if r.Reason == "" {
		return NewValidationError("reason is required")
	}
	if len(r.Details) > 2000 {
		return NewValidationError("details length must be at most 2000")
	}
	return nil
}

type ModerationService interface {
	// Block also removes any friendship between the two users
	Block(ctx context.Context, blockerID string, req *BlockRequest) error
	Unblock(ctx context.Context, blockerID string, blockedID string) error
	IsBlocked(ctx context.Context, userID string, otherID string) (bool, error)
	ListBlocked(ctx context.Context, userID string) ([]*Block, error)
	Report(ctx context.Context, reporterID string, req *ReportRequest) (*Report, error)
}

type ModerationRepository interface {
	CreateBlock(ctx context.Context, block *Block) error
	DeleteBlock(ctx context.Context, blockerID string, blockedID string) error
	// IsBlocked checks both directions
	IsBlocked(ctx context.Context, userID string, otherID string) (bool, error)
	ListBlocked(ctx context.Context, userID string) ([]*Block, error)
	CreateReport(ctx context.Context, report *Report) error
}
