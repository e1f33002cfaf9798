package feedapp

import (
	"context"
	"fmt"
	"testing"
	"time"

	adEntity "dhvanicast/internal/core/ad"
	"dhvanicast/internal/core/feed"
	"dhvanicast/internal/core/feedstore"
	"dhvanicast/internal/core/overlay"

	"github.com/gofrs/uuid"
)

type stubFetcher struct {
	byCity map[string][]feed.Post
}

func (f *stubFetcher) FetchPosts(ctx context.Context, city string) ([]feed.Post, error) {
	return f.byCity[city], nil
}

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

type stubAdRepo struct {
	ads []*adEntity.Ad
}

func (s *stubAdRepo) Create(ctx context.Context, a *adEntity.Ad) (*adEntity.Ad, error) {
	return a, nil
}

func (s *stubAdRepo) Active(ctx context.Context, city string) ([]*adEntity.Ad, error) {
	return s.ads, nil
}

type stubTiers struct {
	exempt map[string]bool
}

func (s *stubTiers) IsAdExempt(ctx context.Context, userID string) bool { return s.exempt[userID] }

func somePosts(city string, n int) []feed.Post {
	posts := make([]feed.Post, 0, n)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		posts = append(posts, feed.Post{
			ID:         fmt.Sprintf("p%d", i+1),
			AuthorName: fmt.Sprintf("author%d", i%3),
			City:       city,
			Caption:    fmt.Sprintf("post number %d", i+1),
			Payload:    feed.ThoughtPayload{},
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	return posts
}

func someAds(n int) []*adEntity.Ad {
	ads := make([]*adEntity.Ad, 0, n)
	for i := 0; i < n; i++ {
		ads = append(ads, &adEntity.Ad{
			ID:      uuid.Must(uuid.NewV4()),
			Sponsor: "acme",
			Title:   fmt.Sprintf("ad %d", i+1),
			Active:  true,
		})
	}
	return ads
}

func newService(byCity map[string][]feed.Post, ads []*adEntity.Ad, exempt map[string]bool) (*FeedService, *memOverlayRepo) {
	overlays := newMemOverlayRepo()
	pool := feedstore.NewPool(&stubFetcher{byCity: byCity})
	svc := NewFeedService(pool, overlays, &stubAdRepo{ads: ads}, &stubTiers{exempt: exempt})
	return svc, overlays
}

func TestBuildFeedInterleavesAds(t *testing.T) {
	svc, _ := newService(map[string][]feed.Post{"Delhi": somePosts("Delhi", 7)}, someAds(3), nil)

	page, err := svc.BuildFeed(context.Background(), FeedQuery{
		ViewerID:  "viewer",
		SessionID: "sess",
		City:      "Delhi",
		Policy:    feed.SortLatest,
		Page:      1,
		Limit:     20,
	})
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}

	// 7 posts + 7/3 ads
	if len(page.Data) != 9 {
		t.Fatalf("len(Data) = %d, want 9", len(page.Data))
	}
	if page.Total != 7 || page.TotalPages != 1 {
		t.Fatalf("Total=%d TotalPages=%d, want 7/1", page.Total, page.TotalPages)
	}
	if page.Data[3].Ad == nil || page.Data[7].Ad == nil {
		t.Fatal("expected ads after the 3rd and 6th posts")
	}
}

func TestBuildFeedExemptViewerSeesNoAds(t *testing.T) {
	svc, _ := newService(
		map[string][]feed.Post{"Delhi": somePosts("Delhi", 7)},
		someAds(3),
		map[string]bool{"prime-viewer": true},
	)

	page, err := svc.BuildFeed(context.Background(), FeedQuery{
		ViewerID:  "prime-viewer",
		SessionID: "sess",
		City:      "Delhi",
		Page:      1,
		Limit:     20,
	})
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}
	if len(page.Data) != 7 {
		t.Fatalf("len(Data) = %d, want 7 without ads", len(page.Data))
	}
	for _, it := range page.Data {
		if it.Ad != nil {
			t.Fatal("exempt viewer saw an ad")
		}
	}
}

func TestBuildFeedRepostSuppression(t *testing.T) {
	svc, overlays := newService(map[string][]feed.Post{"": somePosts("", 6)}, nil, nil)

	if err := svc.RepostAuthor(context.Background(), "sess", "author0"); err != nil {
		t.Fatalf("RepostAuthor: %v", err)
	}

	page, err := svc.BuildFeed(context.Background(), FeedQuery{SessionID: "sess", Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}

	// author0 wrote p1 and p4
	if page.Total != 4 {
		t.Fatalf("Total = %d, want 4 after suppression", page.Total)
	}
	for _, it := range page.Data {
		if it.Post != nil && it.Post.AuthorName == "author0" {
			t.Fatal("suppressed author leaked into the feed")
		}
	}

	// suppression is terminal for the session
	st, _ := overlays.Load(context.Background(), "sess")
	if !st.AuthorReposted("author0") {
		t.Fatal("repost marker not persisted")
	}
}

func TestBuildFeedSearchAndPagination(t *testing.T) {
	svc, _ := newService(map[string][]feed.Post{"": somePosts("", 25)}, nil, nil)

	page, err := svc.BuildFeed(context.Background(), FeedQuery{
		SessionID: "sess",
		Policy:    feed.SortOldest,
		Page:      2,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}
	if page.Total != 25 || page.TotalPages != 3 {
		t.Fatalf("Total=%d TotalPages=%d, want 25/3", page.Total, page.TotalPages)
	}
	if first := page.Data[0].Post; first == nil || first.ID != "p11" {
		t.Fatalf("page 2 under oldest should start at p11, got %+v", page.Data[0])
	}

	// search narrows by caption substring
	page, err = svc.BuildFeed(context.Background(), FeedQuery{
		SessionID: "sess",
		Search:    "number 2",
		Page:      1,
		Limit:     20,
	})
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}
	// matches "number 2" and "number 20".."number 25"
	if page.Total != 7 {
		t.Fatalf("search Total = %d, want 7", page.Total)
	}
}

func TestBuildFeedMarksLikedPosts(t *testing.T) {
	svc, overlays := newService(map[string][]feed.Post{"": somePosts("", 3)}, nil, nil)

	st, _ := overlays.Load(context.Background(), "sess")
	st.ToggleLike("p2").Confirm()
	_ = overlays.Save(context.Background(), "sess", st)

	page, err := svc.BuildFeed(context.Background(), FeedQuery{SessionID: "sess", Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}
	for _, it := range page.Data {
		if it.Post == nil {
			continue
		}
		if got, want := it.Post.LikedByMe, it.Post.ID == "p2"; got != want {
			t.Errorf("post %s LikedByMe = %v, want %v", it.Post.ID, got, want)
		}
	}
}
