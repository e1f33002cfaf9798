package chatapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	chatEntity "dhvanicast/internal/core/chat"
	chatPort "dhvanicast/internal/ports/chat"

	"github.com/gofrs/uuid"
)

var ErrEmptyBody = errors.New("message body is empty")

// ChatService سرویس پیام‌های خصوصی
type ChatService struct {
	MessageRepository chatPort.MessageRepository
}

func NewChatService(repo chatPort.MessageRepository) *ChatService {
	return &ChatService{MessageRepository: repo}
}

// SendMessage ذخیره پیام و بازگشت DTO برای ارسال از طریق هاب
func (s *ChatService) SendMessage(ctx context.Context, senderID, recipientID, body string) (*chatPort.MessageDTO, error) {
	if body == "" {
		return nil, ErrEmptyBody
	}
	sid, err := uuid.FromString(senderID)
	if err != nil {
		return nil, fmt.Errorf("invalid sender id: %w", err)
	}
	rid, err := uuid.FromString(recipientID)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient id: %w", err)
	}

	msg := &chatEntity.Message{
		ID:          uuid.Must(uuid.NewV4()),
		SenderID:    sid,
		RecipientID: rid,
		Body:        body,
	}

	saved, err := s.MessageRepository.Save(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return toDTO(saved), nil
}

// History تاریخچه گفتگو بین دو کاربر
func (s *ChatService) History(ctx context.Context, userA, userB string, limit int) ([]*chatPort.MessageDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	msgs, err := s.MessageRepository.Conversation(ctx, userA, userB, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*chatPort.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toDTO(m))
	}
	return out, nil
}

func toDTO(m *chatEntity.Message) *chatPort.MessageDTO {
	return &chatPort.MessageDTO{
		ID:          m.ID.String(),
		SenderID:    m.SenderID.String(),
		RecipientID: m.RecipientID.String(),
		Body:        m.Body,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
