package post

import (
	"errors"
	"time"

	"dhvanicast/internal/core/feed"
	"dhvanicast/internal/core/user"

	"github.com/gofrs/uuid"
)

const MaxCaptionLen = 500

var (
	ErrCaptionTooLong = errors.New("caption exceeds 500 characters")
	ErrUnknownKind    = errors.New("unknown post kind")
	ErrBadPoll        = errors.New("poll needs at least two options with matching vote counts")
	ErrEmptyMedia     = errors.New("media post needs at least one url")
)

// Post رکورد پست در دیتابیس
type Post struct {
	ID            uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID        uuid.UUID  `gorm:"type:char(36);not null"`
	User          user.User  `gorm:"foreignkey:UserID"`
	City          string     `gorm:"type:varchar(100);index"`
	Kind          string     `gorm:"type:varchar(16);not null"`
	Caption       string     `gorm:"type:varchar(500)"`
	Tags          []string   `gorm:"serializer:json"`
	Images        []string   `gorm:"serializer:json"`
	VideoURL      string     `gorm:"type:varchar(512)"`
	PollOptions   []string   `gorm:"serializer:json"`
	PollVotes     []int      `gorm:"serializer:json"`
	Likes         int        `gorm:"not null;default:0"`
	Views         int        `gorm:"not null;default:0"`
	CommentsCount int        `gorm:"not null;default:0"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `gorm:"index"`
}

// Validate checks the kind-dependent invariants before the record is stored.
func (p *Post) Validate() error {
	if len(p.Caption) > MaxCaptionLen {
		return ErrCaptionTooLong
	}
	switch feed.Kind(p.Kind) {
	case feed.KindImage:
		if len(p.Images) == 0 {
			return ErrEmptyMedia
		}
	case feed.KindVideo:
		if p.VideoURL == "" {
			return ErrEmptyMedia
		}
	case feed.KindPoll:
		if len(p.PollOptions) < 2 || len(p.PollOptions) != len(p.PollVotes) {
			return ErrBadPoll
		}
	case feed.KindThought:
	default:
		return ErrUnknownKind
	}
	return nil
}

// Payload builds the tagged union consumed by the feed pipeline.
func (p *Post) Payload() feed.Payload {
	switch feed.Kind(p.Kind) {
	case feed.KindImage:
		return feed.ImagePayload{Images: p.Images}
	case feed.KindVideo:
		return feed.VideoPayload{VideoURL: p.VideoURL}
	case feed.KindPoll:
		return feed.PollPayload{Options: p.PollOptions, Votes: p.PollVotes}
	default:
		return feed.ThoughtPayload{}
	}
}

// ToFeed converts the stored record into the immutable pipeline value.
func (p *Post) ToFeed() feed.Post {
	return feed.Post{
		ID:              p.ID.String(),
		AuthorName:      p.User.Username,
		AuthorAvatarURL: p.User.AvatarURL,
		City:            p.City,
		Caption:         p.Caption,
		Tags:            p.Tags,
		Payload:         p.Payload(),
		Likes:           p.Likes,
		Views:           p.Views,
		CommentsCount:   p.CommentsCount,
		CreatedAt:       p.CreatedAt,
	}
}
