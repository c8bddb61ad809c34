package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_chat_service.go -package mocks github.com/synthapp/synth/internal/domain ChatService
//go:generate mockgen -destination mocks/mock_chat_repository.go -package mocks github.com/synthapp/synth/internal/domain ChatRepository
//go:generate mockgen -destination mocks/mock_message_cipher.go -package mocks github.com/synthapp/synth/internal/domain MessageCipher
//go:generate mockgen -destination mocks/mock_message_publisher.go -package mocks github.com/synthapp/synth/internal/domain MessagePublisher

type ChatType string

const (
	ChatTypeDirect   ChatType = "direct"
	ChatTypeGroup    ChatType = "group"
	ChatTypeVerified ChatType = "verified"
)

// ChatEntityType is the kind of entity a verified chat belongs to
type ChatEntityType string

const (
	ChatEntityEvent  ChatEntityType = "event"
	ChatEntityArtist ChatEntityType = "artist"
	ChatEntityVenue  ChatEntityType = "venue"
)

func (t ChatEntityType) Valid() bool {
	return t == ChatEntityEvent || t == ChatEntityArtist || t == ChatEntityVenue
}

const (
	MaxMessageLength   = 4000
	DefaultMessageList = 50
	MaxMessageList     = 200
)

type Chat struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           ChatType       `json:"type"`
	EntityType     ChatEntityType `json:"entity_type,omitempty"`
	EntityID       string         `json:"entity_id,omitempty"`
	CreatedBy      string         `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	MemberCount    int            `json:"member_count"`
}

// VerifiedChatInfo describes a verified chat from the perspective of one user
type VerifiedChatInfo struct {
	ChatID         string     `json:"chat_id"`
	ChatName       string     `json:"chat_name"`
	MemberCount    int        `json:"member_count"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	IsUserMember   bool       `json:"is_user_member"`
}

type Message struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chat_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// VerifiedChatName builds the default display name of an entity chat
func VerifiedChatName(entityType ChatEntityType, entityName string) string {
	name := strings.TrimSpace(entityName)
	if name == "" {
		name = string(entityType)
	}
	return name + " Chat"
}

type VerifiedChatRequest struct {
	EntityType ChatEntityType `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	EntityName string         `json:"entity_name,omitempty"`
}

func (r *VerifiedChatRequest) Validate() error {
	if !r.EntityType.Valid() {
		return NewValidationError(fmt.Sprintf("entity_type must be event, artist or venue, got %q", r.EntityType))
	}
	if r.EntityID == "" {
		return NewValidationError("entity_id is required")
	}
	return nil
}

type SendMessageRequest struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
}

func (r *SendMessageRequest) Validate() error {
	if r.ChatID == "" {
		return NewValidationError("chat_id is required")
	}
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return NewValidationError("content is required")
	}
	if len(r.Content) > MaxMessageLength {
		return NewValidationError(fmt.Sprintf("content length must be at most %d", MaxMessageLength))
	}
	return nil
}

type ListMessagesRequest struct {
	ChatID string
	Before *time.Time
	Limit  int
}

func (r *ListMessagesRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultMessageList
	}
	if r.Limit > MaxMessageList {
		r.Limit = MaxMessageList
	}
}

// MessageCipher encrypts message bodies at rest, keyed per chat
type MessageCipher interface {
	Encrypt(chatID string, plaintext string) (string, error)
	Decrypt(chatID string, payload string) (string, error)
}

// MessagePublisher fans a stored message out to live subscribers of its chat
type MessagePublisher interface {
	PublishMessage(chatID string, message *Message)
}

type ChatService interface {
	GetOrCreateVerifiedChat(ctx context.Context, req *VerifiedChatRequest) (*Chat, error)
	JoinVerifiedChat(ctx context.Context, chatID string, userID string) error
	GetVerifiedChatInfo(ctx context.Context, entityType ChatEntityType, entityID string, userID string) (*VerifiedChatInfo, error)
	IsMember(ctx context.Context, chatID string, userID string) (bool, error)
	// JoinOrOpen creates the entity chat if missing and joins the user to it
	JoinOrOpen(ctx context.Context, userID string, req *VerifiedChatRequest) (*Chat, error)
	GetOrCreateDirectChat(ctx context.Context, userID string, friendID string) (*Chat, error)
	ListChats(ctx context.Context, userID string) ([]*Chat, error)
	SendMessage(ctx context.Context, senderID string, req *SendMessageRequest) (*Message, error)
	ListMessages(ctx context.Context, userID string, req *ListMessagesRequest) ([]*Message, error)
}

type ChatRepository interface {
	GetVerifiedChat(ctx context.Context, entityType ChatEntityType, entityID string) (*Chat, error)
	CreateChat(ctx context.Context, chat *Chat, memberIDs []string) error
	GetChat(ctx context.Context, chatID string) (*Chat, error)
	// AddParticipant is a no-op when the user already belongs to the chat
	AddParticipant(ctx context.Context, chatID string, userID string) error
	IsParticipant(ctx context.Context, chatID string, userID string) (bool, error)
	CountParticipants(ctx context.Context, chatID string) (int, error)
	FindDirectChat(ctx context.Context, userID string, otherID string) (*Chat, error)
	ListUserChats(ctx context.Context, userID string) ([]*Chat, error)
	// InsertMessage stores the message and bumps the chat's last_activity_at
	InsertMessage(ctx context.Context, message *Message) error
	ListMessages(ctx context.Context, chatID string, before *time.Time, limit int) ([]*Message, error)
}
