package post

import (
	"context"
	"time"

	"dhvanicast/internal/core/feed"
	"dhvanicast/internal/core/post"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(post *post.Post) (*post.Post, error)
	FindByID(id string) (*post.Post, error)
	FindByUserID(userID string) ([]*post.Post, error)
	// FindByCity returns every live post for a city, or the whole platform
	// when city is empty. Author records are preloaded.
	FindByCity(ctx context.Context, city string) ([]*post.Post, error)
	// AddLikes atomically adjusts the like counter and returns the new value.
	AddLikes(ctx context.Context, id string, delta int) (int, error)
	AddView(ctx context.Context, id string) error
}

// DTOها برای UseCase
type PostDTO struct {
	ID              string   `json:"id"`
	AuthorName      string   `json:"authorName"`
	AuthorAvatarURL string   `json:"authorAvatarUrl,omitempty"`
	City            string   `json:"city,omitempty"`
	Kind            string   `json:"kind"`
	Caption         string   `json:"caption"`
	Tags            []string `json:"tags,omitempty"`
	Images          []string `json:"images,omitempty"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	Options         []string `json:"options,omitempty"`
	Votes           []int    `json:"votes,omitempty"`
	Likes           int      `json:"likes"`
	Views           int      `json:"views"`
	CommentsCount   int      `json:"commentsCount"`
	LikedByMe       bool     `json:"likedByMe"`
	CreatedAt       string   `json:"createdAt"`
}

// FromFeed flattens the pipeline value (payload union included) into the
// wire shape.
func FromFeed(p feed.Post, likedByMe bool) *PostDTO {
	dto := &PostDTO{
		ID:              p.ID,
		AuthorName:      p.AuthorName,
		AuthorAvatarURL: p.AuthorAvatarURL,
		City:            p.City,
		Caption:         p.Caption,
		Tags:            p.Tags,
		Likes:           p.Likes,
		Views:           p.Views,
		CommentsCount:   p.CommentsCount,
		LikedByMe:       likedByMe,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	switch payload := p.Payload.(type) {
	case feed.ImagePayload:
		dto.Kind = string(feed.KindImage)
		dto.Images = payload.Images
	case feed.VideoPayload:
		dto.Kind = string(feed.KindVideo)
		dto.VideoURL = payload.VideoURL
	case feed.PollPayload:
		dto.Kind = string(feed.KindPoll)
		dto.Options = payload.Options
		dto.Votes = payload.Votes
	default:
		dto.Kind = string(feed.KindThought)
	}
	return dto
}

// FeedItemDTO یک آیتم فید: پست یا جایگاه تبلیغ
type FeedItemDTO struct {
	Post *PostDTO     `json:"post,omitempty"`
	Ad   *feed.AdSlot `json:"ad,omitempty"`
}

// FeedPageDTO پاکت صفحه‌بندی فید
type FeedPageDTO struct {
	Data       []FeedItemDTO `json:"data"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}
