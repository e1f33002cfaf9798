package database

import (
	"context"

	"dhvanicast/internal/config"
	"dhvanicast/internal/core/ad"
)

// AdRepositoryDatabase پیاده‌سازی AdRepository برای دیتابیس
type AdRepositoryDatabase struct{}

func NewAdRepositoryDatabase() *AdRepositoryDatabase {
	return &AdRepositoryDatabase{}
}

func (repo *AdRepositoryDatabase) Create(ctx context.Context, a *ad.Ad) (*ad.Ad, error) {
	if err := config.DB.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (repo *AdRepositoryDatabase) Active(ctx context.Context, city string) ([]*ad.Ad, error) {
	var ads []*ad.Ad
	q := config.DB.WithContext(ctx).Where("active = ?", true)
	if city != "" {
		q = q.Where("city = ? OR city = ''", city)
	} else {
		q = q.Where("city = ''")
	}
	if err := q.Order("created_at ASC").Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}
