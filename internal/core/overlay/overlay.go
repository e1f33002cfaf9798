package overlay

import "sync"

// State نگهدارنده وضعیت نمایش هر نشست (session) کاربر
//
// It tracks which posts the viewer liked, which authors they reposted and
// which block requests are still pending. The zero value is not usable,
// call New.
type State struct {
	mu              sync.Mutex
	liked           map[string]bool
	repostedAuthors map[string]bool
	pendingBlocks   map[string]string // authorName -> reason
}

func New() *State {
	return &State{
		liked:           make(map[string]bool),
		repostedAuthors: make(map[string]bool),
		pendingBlocks:   make(map[string]string),
	}
}

// Liked reports whether the viewer currently likes the post.
func (s *State) Liked(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[postID]
}

// AuthorReposted reports whether the author was reposted this session.
// Reposted authors stay suppressed until the session ends.
func (s *State) AuthorReposted(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repostedAuthors[name]
}

// MarkReposted suppresses an author for the rest of the session. There is
// no un-repost.
func (s *State) MarkReposted(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repostedAuthors[name] = true
}

// MarkBlockPending records a submitted block request. It never affects
// filtering, only the human-readable pending state.
func (s *State) MarkBlockPending(authorName, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingBlocks[authorName] = reason
}

// BlockPending returns the pending reason, if any.
func (s *State) BlockPending(authorName string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reason, ok := s.pendingBlocks[authorName]
	return reason, ok
}

// LikeToggle is the tentative half of the like two-phase commit: the local
// state flips immediately and the returned handle either confirms the flip
// or reverts to the pre-toggle value when the remote call fails.
type LikeToggle struct {
	state    *State
	postID   string
	previous bool
	done     bool
}

// ToggleLike flips the like flag optimistically.
func (s *State) ToggleLike(postID string) *LikeToggle {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.liked[postID]
	s.liked[postID] = !prev
	return &LikeToggle{state: s, postID: postID, previous: prev}
}

// Confirm keeps the optimistic value. Calling it twice is a no-op.
func (t *LikeToggle) Confirm() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()
	t.done = true
}

// Revert restores the pre-toggle value. No-op after Confirm.
func (t *LikeToggle) Revert() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()
	if t.done {
		return
	}
	t.state.liked[t.postID] = t.previous
	t.done = true
}

// Snapshot is the serializable form used by the redis adapter.
type Snapshot struct {
	Liked           []string          `json:"liked"`
	RepostedAuthors []string          `json:"repostedAuthors"`
	PendingBlocks   map[string]string `json:"pendingBlocks"`
}

func (s *State) Export() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{PendingBlocks: make(map[string]string, len(s.pendingBlocks))}
	for id, on := range s.liked {
		if on {
			snap.Liked = append(snap.Liked, id)
		}
	}
	for name := range s.repostedAuthors {
		snap.RepostedAuthors = append(snap.RepostedAuthors, name)
	}
	for name, reason := range s.pendingBlocks {
		snap.PendingBlocks[name] = reason
	}
	return snap
}

func FromSnapshot(snap Snapshot) *State {
	s := New()
	for _, id := range snap.Liked {
		s.liked[id] = true
	}
	for _, name := range snap.RepostedAuthors {
		s.repostedAuthors[name] = true
	}
	for name, reason := range snap.PendingBlocks {
		s.pendingBlocks[name] = reason
	}
	return s
}
