package database

import (
	"context"

	"dhvanicast/internal/config"
	"dhvanicast/internal/core/chat"
)

// ChatRepositoryDatabase پیاده‌سازی MessageRepository برای دیتابیس
type ChatRepositoryDatabase struct{}

func NewChatRepositoryDatabase() *ChatRepositoryDatabase {
	return &ChatRepositoryDatabase{}
}

func (repo *ChatRepositoryDatabase) Save(ctx context.Context, msg *chat.Message) (*chat.Message, error) {
	if err := config.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (repo *ChatRepositoryDatabase) Conversation(ctx context.Context, userA, userB string, limit int) ([]*chat.Message, error) {
	var msgs []*chat.Message
	err := config.DB.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", userA, userB, userB, userA).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
