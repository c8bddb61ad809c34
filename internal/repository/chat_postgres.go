package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/synthapp/synth/internal/domain"
)

const chatSelect = `
	SELECT c.id, c.chat_name, c.chat_type, c.entity_type, c.entity_id, c.created_by,
		c.created_at, c.last_activity_at,
		(SELECT COUNT(*) FROM chat_participants cp WHERE cp.chat_id = c.id)
	FROM chats c
`

type chatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new PostgreSQL chat repository
func NewChatRepository(db *sql.DB) domain.ChatRepository {
	return &chatRepository{db: db}
}

func scanChat(row rowScanner) (*domain.Chat, error) {
	var (
		c          domain.Chat
		entityType sql.NullString
		entityID   sql.NullString
		createdBy  sql.NullString
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Type,
		&entityType,
		&entityID,
		&createdBy,
		&c.CreatedAt,
		&c.LastActivityAt,
		&c.MemberCount,
	)
	if err != nil {
		return nil, err
	}
	c.EntityType = domain.ChatEntityType(entityType.String)
	c.EntityID = entityID.String
	c.CreatedBy = createdBy.String
	return &c, nil
}

func (r *chatRepository) GetVerifiedChat(ctx context.Context, entityType domain.ChatEntityType, entityID string) (*domain.Chat, error) {
	query := chatSelect + ` WHERE c.chat_type = 'verified' AND c.entity_type = $1 AND c.entity_id = $2`
	chat, err := scanChat(r.db.QueryRowContext(ctx, query, string(entityType), entityID))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("chat", string(entityType)+":"+entityID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verified chat: %w", err)
	}
	return chat, nil
}

// CreateChat inserts the chat and its initial members in one transaction. A
// second verified chat for the same entity is reported as a conflict.
func (r *chatRepository) CreateChat(ctx context.Context, chat *domain.Chat, memberIDs []string) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	chat.CreatedAt = now
	chat.LastActivityAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO chats (id, chat_name, chat_type, entity_type, entity_id, created_by, created_at, last_activity_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`,
		chat.ID,
		chat.Name,
		string(chat.Type),
		nullString(string(chat.EntityType)),
		nullString(chat.EntityID),
		nullString(chat.CreatedBy),
		now,
	)
	if isUniqueViolation(err) {
		return &domain.ErrConflict{Message: "chat already exists"}
	}
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}

	for _, userID := range memberIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chat_participants (chat_id, user_id, joined_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (chat_id, user_id) DO NOTHING
		`, chat.ID, userID, now)
		if err != nil {
			return fmt.Errorf("failed to add chat participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	chat.MemberCount = len(memberIDs)
	return nil
}

func (r *chatRepository) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	chat, err := scanChat(r.db.QueryRowContext(ctx, chatSelect+` WHERE c.id = $1`, chatID))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("chat", chatID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return chat, nil
}

func (r *chatRepository) AddParticipant(ctx context.Context, chatID string, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_participants (chat_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id, user_id) DO NOTHING
	`, chatID, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to add chat participant: %w", err)
	}
	return nil
}

func (r *chatRepository) IsParticipant(ctx context.Context, chatID string, userID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM chat_participants WHERE chat_id = $1 AND user_id = $2)`,
		chatID, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check chat membership: %w", err)
	}
	return ok, nil
}

func (r *chatRepository) CountParticipants(ctx context.Context, chatID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_participants WHERE chat_id = $1`, chatID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count chat participants: %w", err)
	}
	return count, nil
}

func (r *chatRepository) FindDirectChat(ctx context.Context, userID string, otherID string) (*domain.Chat, error) {
	query := chatSelect + `
		WHERE c.chat_type = 'direct'
			AND EXISTS (SELECT 1 FROM chat_participants a WHERE a.chat_id = c.id AND a.user_id = $1)
			AND EXISTS (SELECT 1 FROM chat_participants b WHERE b.chat_id = c.id AND b.user_id = $2)
		ORDER BY c.created_at
		LIMIT 1`
	chat, err := scanChat(r.db.QueryRowContext(ctx, query, userID, otherID))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("chat", userID+":"+otherID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find direct chat: %w", err)
	}
	return chat, nil
}

func (r *chatRepository) ListUserChats(ctx context.Context, userID string) ([]*domain.Chat, error) {
	query := chatSelect + `
		JOIN chat_participants me ON me.chat_id = c.id AND me.user_id = $1
		ORDER BY c.last_activity_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer rows.Close()

	chats := []*domain.Chat{}
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat: %w", err)
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (r *chatRepository) InsertMessage(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages (id, chat_id, sender_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, message.ID, message.ChatID, message.SenderID, message.Content, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE chats SET last_activity_at = $2 WHERE id = $1`, message.ChatID, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to update chat activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListMessages returns the newest messages first, optionally strictly older
// than before
func (r *chatRepository) ListMessages(ctx context.Context, chatID string, before *time.Time, limit int) ([]*domain.Message, error) {
	qb := psql.
		Select("m.id", "m.chat_id", "m.sender_id", "COALESCE(p.name, '')", "m.content", "m.created_at").
		From("messages m").
		LeftJoin("profiles p ON p.user_id = m.sender_id").
		Where("m.chat_id = ?", chatID).
		OrderBy("m.created_at DESC").
		Limit(uint64(limit))
	if before != nil {
		qb = qb.Where("m.created_at < ?", *before)
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.SenderName, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
