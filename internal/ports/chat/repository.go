package chat

import (
	"context"

	"dhvanicast/internal/core/chat"
)

// MessageRepository پورت برای پیام‌های خصوصی
type MessageRepository interface {
	Save(ctx context.Context, msg *chat.Message) (*chat.Message, error)
	Conversation(ctx context.Context, userA, userB string, limit int) ([]*chat.Message, error)
}

type MessageDTO struct {
	ID          string `json:"id"`
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Body        string `json:"body"`
	CreatedAt   string `json:"createdAt"`
}
