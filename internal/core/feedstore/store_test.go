package feedstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"dhvanicast/internal/core/feed"
)

type stubFetcher struct {
	byCity  map[string][]feed.Post
	entered chan struct{} // closed on first FetchPosts entry, if set
	gate    chan struct{} // when set, FetchPosts waits on it
}

func (f *stubFetcher) FetchPosts(ctx context.Context, city string) ([]feed.Post, error) {
	if f.entered != nil {
		close(f.entered)
		f.entered = nil
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.byCity[city], nil
}

func somePosts(ids ...string) []feed.Post {
	out := make([]feed.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, feed.Post{ID: id, Payload: feed.ThoughtPayload{}})
	}
	return out
}

func TestRefreshInstallsWorkingSet(t *testing.T) {
	fetcher := &stubFetcher{byCity: map[string][]feed.Post{
		"": somePosts("1", "2"),
	}}
	store := New(fetcher)

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := store.Snapshot(); len(got) != 2 {
		t.Fatalf("Snapshot len = %d, want 2", len(got))
	}
	if store.LastRefresh().IsZero() {
		t.Fatal("LastRefresh should be set")
	}
}

func TestStaleRefreshIsDiscarded(t *testing.T) {
	fetcher := &stubFetcher{
		byCity: map[string][]feed.Post{
			"":      somePosts("global"),
			"Delhi": somePosts("delhi"),
		},
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	store := New(fetcher)

	entered := fetcher.entered
	done := make(chan error, 1)
	go func() { done <- store.Refresh(context.Background()) }()

	// scope changes while the fetch is provably in flight
	<-entered
	store.SetScope("Delhi")

	close(fetcher.gate)
	if err := <-done; err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if got := store.Snapshot(); len(got) != 0 {
		t.Fatalf("stale response was installed: %v", got)
	}

	// the next refresh for the new scope commits normally
	fetcher.gate = nil
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	got := store.Snapshot()
	if len(got) != 1 || got[0].ID != "delhi" {
		t.Fatalf("Snapshot = %v, want the Delhi working set", got)
	}
}

// perCallFetcher returns responses[i] for the i-th call and can hold an
// individual call in flight.
type perCallFetcher struct {
	mu        sync.Mutex
	calls     int
	responses [][]feed.Post
	entered   []chan struct{} // closed when call i enters, if set
	gates     []chan struct{} // call i waits on its gate, if set
}

func (f *perCallFetcher) FetchPosts(ctx context.Context, city string) ([]feed.Post, error) {
	f.mu.Lock()
	i := f.calls
	f.calls++
	f.mu.Unlock()

	if i < len(f.entered) && f.entered[i] != nil {
		close(f.entered[i])
	}
	if i < len(f.gates) && f.gates[i] != nil {
		<-f.gates[i]
	}
	return f.responses[i], nil
}

func TestOverlappingSameScopeRefreshes(t *testing.T) {
	fetcher := &perCallFetcher{
		responses: [][]feed.Post{somePosts("stale"), somePosts("fresh")},
		entered:   []chan struct{}{make(chan struct{}), nil},
		gates:     []chan struct{}{make(chan struct{}), nil},
	}
	store := New(fetcher)

	// first refresh is held in flight
	done := make(chan error, 1)
	go func() { done <- store.Refresh(context.Background()) }()
	<-fetcher.entered[0]

	// a second refresh of the same scope completes meanwhile
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := store.Snapshot(); len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("Snapshot = %v, want the fresh working set", got)
	}

	// the first response arrives late and must be dropped
	close(fetcher.gates[0])
	if err := <-done; err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := store.Snapshot(); len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("late same-scope response overwrote fresher data: %v", got)
	}
}

func TestSnapshotReturnsCopy(t *testing.T) {
	fetcher := &stubFetcher{byCity: map[string][]feed.Post{"": somePosts("1")}}
	store := New(fetcher)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	snap := store.Snapshot()
	snap[0].ID = "mutated"

	if store.Snapshot()[0].ID != "1" {
		t.Fatal("Snapshot must not expose the internal slice")
	}
}

func TestSetScopeSameCityKeepsWorkingSet(t *testing.T) {
	fetcher := &stubFetcher{byCity: map[string][]feed.Post{"Delhi": somePosts("1")}}
	store := New(fetcher)
	store.SetScope("Delhi")
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	store.SetScope("Delhi")
	if len(store.Snapshot()) != 1 {
		t.Fatal("re-setting the same scope must not clear the working set")
	}
}

func TestPoolLazyAndRefreshAll(t *testing.T) {
	fetcher := &stubFetcher{byCity: map[string][]feed.Post{
		"":     somePosts("g1", "g2"),
		"Pune": somePosts("p1"),
	}}
	pool := NewPool(fetcher)

	global := pool.Get("")
	pune := pool.Get("Pune")
	if pool.Get("") != global {
		t.Fatal("Get must return the same store per scope")
	}

	if errs := pool.RefreshAll(context.Background()); len(errs) != 0 {
		t.Fatalf("RefreshAll errors: %v", errs)
	}
	if len(global.Snapshot()) != 2 || len(pune.Snapshot()) != 1 {
		t.Fatal("RefreshAll did not fill every scope")
	}

	// refreshed stores report a recent refresh time
	if time.Since(pune.LastRefresh()) > time.Minute {
		t.Fatal("LastRefresh looks wrong")
	}
}
