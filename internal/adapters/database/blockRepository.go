package database

import (
	"context"

	"dhvanicast/internal/config"
	"dhvanicast/internal/core/block"
)

// BlockRepositoryDatabase پیاده‌سازی BlockRequestRepository برای دیتابیس
type BlockRepositoryDatabase struct{}

func NewBlockRepositoryDatabase() *BlockRepositoryDatabase {
	return &BlockRepositoryDatabase{}
}

func (repo *BlockRepositoryDatabase) Create(ctx context.Context, req *block.Request) (*block.Request, error) {
	if err := config.DB.WithContext(ctx).Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

func (repo *BlockRepositoryDatabase) PendingByRequester(ctx context.Context, userID string) ([]*block.Request, error) {
	var reqs []*block.Request
	err := config.DB.WithContext(ctx).
		Where("requested_by = ? AND status = ?", userID, block.StatusPending).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}
