package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/crypto"
	"github.com/synthapp/synth/pkg/logger"
)

type ChatService struct {
	repo      domain.ChatRepository
	friends   domain.FriendService
	profiles  domain.ProfileRepository
	cipher    domain.MessageCipher
	publisher domain.MessagePublisher
	logger    logger.Logger
}

func NewChatService(
	repo domain.ChatRepository,
	friends domain.FriendService,
	profiles domain.ProfileRepository,
	cipher domain.MessageCipher,
	publisher domain.MessagePublisher,
	logger logger.Logger,
) *ChatService {
	return &ChatService{
		repo:      repo,
		friends:   friends,
		profiles:  profiles,
		cipher:    cipher,
		publisher: publisher,
		logger:    logger,
	}
}

// GetOrCreateVerifiedChat returns the single chat of an entity, creating it
// on first use. A concurrent creator winning the race is resolved by reading
// its row back.
func (s *ChatService) GetOrCreateVerifiedChat(ctx context.Context, req *domain.VerifiedChatRequest) (*domain.Chat, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	chat, err := s.repo.GetVerifiedChat(ctx, req.EntityType, req.EntityID)
	if err == nil {
		return chat, nil
	}
	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get verified chat: %w", err)
	}

	now := time.Now().UTC()
	chat = &domain.Chat{
		ID:             uuid.New().String(),
		Name:           domain.VerifiedChatName(req.EntityType, req.EntityName),
		Type:           domain.ChatTypeVerified,
		EntityType:     req.EntityType,
		EntityID:       req.EntityID,
		CreatedAt:      now,
		LastActivityAt: now,
	}
	if err := s.repo.CreateChat(ctx, chat, nil); err != nil {
		if domain.IsConflict(err) {
			existing, getErr := s.repo.GetVerifiedChat(ctx, req.EntityType, req.EntityID)
			if getErr != nil {
				return nil, fmt.Errorf("failed to get verified chat: %w", getErr)
			}
			return existing, nil
		}
		s.logger.WithFields(map[string]interface{}{
			"entity_type": string(req.EntityType),
			"entity_id":   req.EntityID,
		}).Error(fmt.Sprintf("Failed to create verified chat: %v", err))
		return nil, fmt.Errorf("failed to create verified chat: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"chat_id":     chat.ID,
		"entity_type": string(req.EntityType),
		"entity_id":   req.EntityID,
	}).Info("Verified chat created")
	return chat, nil
}

func (s *ChatService) JoinVerifiedChat(ctx context.Context, chatID string, userID string) error {
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to get chat: %w", err)
	}
	if chat.Type != domain.ChatTypeVerified {
		return domain.NewValidationError("only verified chats can be joined")
	}
	if err := s.repo.AddParticipant(ctx, chatID, userID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"chat_id": chatID,
			"user_id": userID,
		}).Error(fmt.Sprintf("Failed to join chat: %v", err))
		return fmt.Errorf("failed to join chat: %w", err)
	}
	return nil
}

func (s *ChatService) GetVerifiedChatInfo(ctx context.Context, entityType domain.ChatEntityType, entityID string, userID string) (*domain.VerifiedChatInfo, error) {
	chat, err := s.repo.GetVerifiedChat(ctx, entityType, entityID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get verified chat: %w", err)
	}

	count, err := s.repo.CountParticipants(ctx, chat.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	info := &domain.VerifiedChatInfo{
		ChatID:      chat.ID,
		ChatName:    chat.Name,
		MemberCount: count,
	}
	if !chat.LastActivityAt.IsZero() {
		last := chat.LastActivityAt
		info.LastActivityAt = &last
	}
	if userID != "" {
		member, err := s.repo.IsParticipant(ctx, chat.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		info.IsUserMember = member
	}
	return info, nil
}

func (s *ChatService) IsMember(ctx context.Context, chatID string, userID string) (bool, error) {
	member, err := s.repo.IsParticipant(ctx, chatID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return member, nil
}

func (s *ChatService) JoinOrOpen(ctx context.Context, userID string, req *domain.VerifiedChatRequest) (*domain.Chat, error) {
	chat, err := s.GetOrCreateVerifiedChat(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddParticipant(ctx, chat.ID, userID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"chat_id": chat.ID,
			"user_id": userID,
		}).Error(fmt.Sprintf("Failed to join chat: %v", err))
		return nil, fmt.Errorf("failed to join chat: %w", err)
	}
	return chat, nil
}

// GetOrCreateDirectChat opens the one-to-one chat between two friends.
func (s *ChatService) GetOrCreateDirectChat(ctx context.Context, userID string, friendID string) (*domain.Chat, error) {
	if userID == friendID {
		return nil, domain.NewValidationError("you cannot chat with yourself")
	}

	friends, err := s.friends.AreFriends(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("failed to check friendship: %w", err)
	}
	if !friends {
		return nil, domain.ErrForbidden
	}

	chat, err := s.repo.FindDirectChat(ctx, userID, friendID)
	if err == nil {
		return chat, nil
	}
	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to find direct chat: %w", err)
	}

	friend, err := s.profiles.GetProfile(ctx, friendID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := time.Now().UTC()
	chat = &domain.Chat{
		ID:             uuid.New().String(),
		Name:           friend.DisplayName(),
		Type:           domain.ChatTypeDirect,
		CreatedBy:      userID,
		CreatedAt:      now,
		LastActivityAt: now,
		MemberCount:    2,
	}
	if err := s.repo.CreateChat(ctx, chat, []string{userID, friendID}); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":   userID,
			"friend_id": friendID,
		}).Error(fmt.Sprintf("Failed to create direct chat: %v", err))
		return nil, fmt.Errorf("failed to create direct chat: %w", err)
	}
	return chat, nil
}

func (s *ChatService) ListChats(ctx context.Context, userID string) ([]*domain.Chat, error) {
	chats, err := s.repo.ListUserChats(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to list chats: %v", err))
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}

// SendMessage stores the body encrypted and publishes the plaintext to live
// subscribers of the chat.
func (s *ChatService) SendMessage(ctx context.Context, senderID string, req *domain.SendMessageRequest) (*domain.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	member, err := s.repo.IsParticipant(ctx, req.ChatID, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return nil, domain.ErrForbidden
	}

	encrypted, err := s.cipher.Encrypt(req.ChatID, req.Content)
	if err != nil {
		s.logger.WithField("chat_id", req.ChatID).Error(fmt.Sprintf("Failed to encrypt message: %v", err))
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	stored := &domain.Message{
		ID:        uuid.New().String(),
		ChatID:    req.ChatID,
		SenderID:  senderID,
		Content:   encrypted,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertMessage(ctx, stored); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"chat_id":   req.ChatID,
			"sender_id": senderID,
		}).Error(fmt.Sprintf("Failed to store message: %v", err))
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	message := *stored
	message.Content = req.Content
	if sender, err := s.profiles.GetProfile(ctx, senderID); err == nil {
		message.SenderName = sender.DisplayName()
	}

	s.publisher.PublishMessage(req.ChatID, &message)
	return &message, nil
}

// ListMessages returns decrypted messages, newest first. Legacy plaintext
// rows pass through unchanged.
func (s *ChatService) ListMessages(ctx context.Context, userID string, req *domain.ListMessagesRequest) ([]*domain.Message, error) {
	if req.ChatID == "" {
		return nil, domain.NewValidationError("chat_id is required")
	}
	req.Normalize()

	member, err := s.repo.IsParticipant(ctx, req.ChatID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return nil, domain.ErrForbidden
	}

	messages, err := s.repo.ListMessages(ctx, req.ChatID, req.Before, req.Limit)
	if err != nil {
		s.logger.WithField("chat_id", req.ChatID).Error(fmt.Sprintf("Failed to list messages: %v", err))
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	for _, m := range messages {
		if !crypto.IsEncrypted(m.Content) {
			continue
		}
		plaintext, err := s.cipher.Decrypt(req.ChatID, m.Content)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"chat_id":    req.ChatID,
				"message_id": m.ID,
			}).Warn(fmt.Sprintf("Failed to decrypt message: %v", err))
			// returned as stored
			continue
		}
		m.Content = plaintext
	}
	return messages, nil
}
