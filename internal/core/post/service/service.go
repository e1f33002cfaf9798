package postapp

import (
	"context"
	"fmt"

	postEntity "dhvanicast/internal/core/post"
	overlayPort "dhvanicast/internal/ports/overlay"
	postPort "dhvanicast/internal/ports/post"

	"github.com/gofrs/uuid"
)

type CreatePostInput struct {
	Kind        string
	Caption     string
	City        string
	Tags        []string
	Images      []string
	VideoURL    string
	PollOptions []string
}

// PostService سرویس مدیریت پست‌ها
type PostService struct {
	PostRepository    postPort.PostRepository
	OverlayRepository overlayPort.OverlayRepository
}

func NewPostService(postRepo postPort.PostRepository, overlayRepo overlayPort.OverlayRepository) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		OverlayRepository: overlayRepo,
	}
}

// CreatePost ایجاد یک پست جدید
func (s *PostService) CreatePost(ctx context.Context, userID string, in CreatePostInput) (*postPort.PostDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uid,
		City:     in.City,
		Kind:     in.Kind,
		Caption:  in.Caption,
		Tags:     in.Tags,
		Images:   in.Images,
		VideoURL: in.VideoURL,
	}
	if len(in.PollOptions) > 0 {
		p.PollOptions = in.PollOptions
		p.PollVotes = make([]int, len(in.PollOptions))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return postPort.FromFeed(created.ToFeed(), false), nil
}

// ToggleLike flips the viewer's like optimistically, then confirms or
// reverts once the counter update resolves. A failed update restores the
// pre-toggle value and returns the error.
func (s *PostService) ToggleLike(ctx context.Context, sessionID, postID string) (likes int, liked bool, err error) {
	state, err := s.OverlayRepository.Load(ctx, sessionID)
	if err != nil {
		return 0, false, fmt.Errorf("load overlay: %w", err)
	}

	toggle := state.ToggleLike(postID)
	delta := 1
	if !state.Liked(postID) {
		delta = -1
	}

	likes, err = s.PostRepository.AddLikes(ctx, postID, delta)
	if err != nil {
		toggle.Revert()
		return 0, state.Liked(postID), fmt.Errorf("toggle like: %w", err)
	}
	toggle.Confirm()

	if err := s.OverlayRepository.Save(ctx, sessionID, state); err != nil {
		return likes, state.Liked(postID), fmt.Errorf("save overlay: %w", err)
	}
	return likes, state.Liked(postID), nil
}

// RecordView bumps the view counter. Failures are not surfaced to viewers.
func (s *PostService) RecordView(ctx context.Context, postID string) error {
	return s.PostRepository.AddView(ctx, postID)
}

// GetPost بازیابی پست با شناسه
func (s *PostService) GetPost(ctx context.Context, sessionID, id string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(id)
	if err != nil {
		return nil, err
	}

	liked := false
	if sessionID != "" {
		if state, err := s.OverlayRepository.Load(ctx, sessionID); err == nil {
			liked = state.Liked(id)
		}
	}
	return postPort.FromFeed(p.ToFeed(), liked), nil
}
