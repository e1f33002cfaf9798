package database

import (
	"context"

	"dhvanicast/internal/config"
	"dhvanicast/internal/core/feed"
	"dhvanicast/internal/core/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
//
// It also implements feedstore.Fetcher so the feed store polls straight
// from the same adapter.
type PostRepositoryDatabase struct{}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(p *post.Post) (*post.Post, error) {
	if err := config.DB.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindByUserID(userID string) ([]*post.Post, error) {
	var posts []*post.Post
	if err := config.DB.Preload("User").Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByCity(ctx context.Context, city string) ([]*post.Post, error) {
	var posts []*post.Post
	q := config.DB.WithContext(ctx).Preload("User")
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// AddLikes adjusts the like counter atomically, clamped at zero, and
// returns the stored value.
func (repo *PostRepositoryDatabase) AddLikes(ctx context.Context, id string, delta int) (int, error) {
	res := config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var p post.Post
	if err := config.DB.WithContext(ctx).Select("likes").Where("id = ?", id).First(&p).Error; err != nil {
		return 0, err
	}
	return p.Likes, nil
}

func (repo *PostRepositoryDatabase) AddView(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// FetchPosts implements feedstore.Fetcher.
func (repo *PostRepositoryDatabase) FetchPosts(ctx context.Context, city string) ([]feed.Post, error) {
	records, err := repo.FindByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	posts := make([]feed.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, r.ToFeed())
	}
	return posts, nil
}
