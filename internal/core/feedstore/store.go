package feedstore

import (
	"context"
	"sync"
	"time"

	"dhvanicast/internal/core/feed"
)

// Fetcher loads the working set for a scope. city == "" means the whole
// platform.
type Fetcher interface {
	FetchPosts(ctx context.Context, city string) ([]feed.Post, error)
}

// Store نگهدارنده working set پست‌ها برای یک scope
//
// Every Refresh claims a fresh generation before fetching and only commits
// its result if that generation is still current when the fetch returns.
// A scope change or a newer refresh bumps the generation, so a stale
// response can never overwrite fresher data.
type Store struct {
	fetcher Fetcher

	mu          sync.Mutex
	scope       string
	generation  uint64
	posts       []feed.Post
	lastRefresh time.Time
}

func New(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// SetScope switches the store to a new city scope (empty for global) and
// invalidates any in-flight refresh.
func (s *Store) SetScope(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scope == city {
		return
	}
	s.scope = city
	s.generation++
	s.posts = nil
}

func (s *Store) Scope() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scope
}

// Refresh fetches the current scope and installs the result unless the
// store moved on while the fetch was in flight. Starting a refresh claims
// a new generation, so of several overlapping refreshes only the newest
// one can commit.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	scope := s.scope
	s.mu.Unlock()

	posts, err := s.fetcher.FetchPosts(ctx, scope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// a scope change or a newer refresh superseded this fetch,
		// drop the stale result
		return nil
	}
	s.posts = posts
	s.lastRefresh = time.Now()
	return nil
}

// Snapshot returns a copy of the working set; callers may filter and sort
// it freely.
func (s *Store) Snapshot() []feed.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]feed.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *Store) LastRefresh() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRefresh
}
