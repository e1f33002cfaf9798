package postapp

import (
	"context"
	"errors"
	"testing"

	"dhvanicast/internal/core/overlay"
	postEntity "dhvanicast/internal/core/post"
)

type fakePostRepo struct {
	likes     int
	likesErr  error
	lastDelta int
}

func (f *fakePostRepo) Create(p *postEntity.Post) (*postEntity.Post, error) { return p, nil }
func (f *fakePostRepo) FindByID(id string) (*postEntity.Post, error) {
	return nil, errors.New("not found")
}
func (f *fakePostRepo) FindByUserID(userID string) ([]*postEntity.Post, error) {
	return nil, nil
}
func (f *fakePostRepo) FindByCity(ctx context.Context, city string) ([]*postEntity.Post, error) {
	return nil, nil
}
func (f *fakePostRepo) AddLikes(ctx context.Context, id string, delta int) (int, error) {
	if f.likesErr != nil {
		return 0, f.likesErr
	}
	f.lastDelta = delta
	f.likes += delta
	return f.likes, nil
}
func (f *fakePostRepo) AddView(ctx context.Context, id string) error { return nil }

type memOverlayRepo struct {
	states map[string]*overlay.State
}

func newMemOverlayRepo() *memOverlayRepo {
	return &memOverlayRepo{states: make(map[string]*overlay.State)}
}

func (m *memOverlayRepo) Load(ctx context.Context, sessionID string) (*overlay.State, error) {
	if st, ok := m.states[sessionID]; ok {
		return st, nil
	}
	return overlay.New(), nil
}

func (m *memOverlayRepo) Save(ctx context.Context, sessionID string, state *overlay.State) error {
	m.states[sessionID] = state
	return nil
}

func TestToggleLikeOptimisticCommit(t *testing.T) {
	repo := &fakePostRepo{likes: 4}
	overlays := newMemOverlayRepo()
	svc := NewPostService(repo, overlays)

	likes, liked, err := svc.ToggleLike(context.Background(), "sess", "p1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !liked || likes != 5 || repo.lastDelta != 1 {
		t.Fatalf("liked=%v likes=%d delta=%d, want liked +1 -> 5", liked, likes, repo.lastDelta)
	}

	// second toggle undoes the first
	likes, liked, err = svc.ToggleLike(context.Background(), "sess", "p1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if liked || likes != 4 || repo.lastDelta != -1 {
		t.Fatalf("liked=%v likes=%d delta=%d, want unliked -1 -> 4", liked, likes, repo.lastDelta)
	}
}

func TestToggleLikeRevertsOnFailure(t *testing.T) {
	repo := &fakePostRepo{likesErr: errors.New("backend down")}
	overlays := newMemOverlayRepo()
	svc := NewPostService(repo, overlays)

	_, liked, err := svc.ToggleLike(context.Background(), "sess", "p1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if liked {
		t.Fatal("like must revert to the pre-click value on failure")
	}

	// nothing was persisted for the session
	st, _ := overlays.Load(context.Background(), "sess")
	if st.Liked("p1") {
		t.Fatal("failed toggle leaked into the overlay")
	}
}

func TestCreatePostValidation(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo, newMemOverlayRepo())
	uid := "8ca9a571-6c9a-4f7a-9560-38c4748ae3b9"

	cases := []struct {
		name string
		in   CreatePostInput
		want error
	}{
		{"unknown kind", CreatePostInput{Kind: "livestream"}, postEntity.ErrUnknownKind},
		{"poll one option", CreatePostInput{Kind: "poll", PollOptions: []string{"only"}}, postEntity.ErrBadPoll},
		{"image without media", CreatePostInput{Kind: "image"}, postEntity.ErrEmptyMedia},
		{"video without url", CreatePostInput{Kind: "video"}, postEntity.ErrEmptyMedia},
	}
	for _, tc := range cases {
		if _, err := svc.CreatePost(context.Background(), uid, tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}

	ok := CreatePostInput{Kind: "poll", Caption: "chai or coffee", PollOptions: []string{"chai", "coffee"}}
	dto, err := svc.CreatePost(context.Background(), uid, ok)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if dto.Kind != "poll" || len(dto.Options) != 2 || len(dto.Votes) != 2 {
		t.Fatalf("poll DTO = %+v", dto)
	}
}
