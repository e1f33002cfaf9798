package overlay

import "testing"

func TestToggleLikeRoundTrip(t *testing.T) {
	s := New()

	first := s.ToggleLike("p1")
	first.Confirm()
	if !s.Liked("p1") {
		t.Fatal("post should be liked after first toggle")
	}

	second := s.ToggleLike("p1")
	second.Confirm()
	if s.Liked("p1") {
		t.Fatal("post should be unliked after second toggle")
	}
}

func TestToggleLikeRevert(t *testing.T) {
	s := New()

	toggle := s.ToggleLike("p1")
	if !s.Liked("p1") {
		t.Fatal("optimistic flip should apply immediately")
	}

	toggle.Revert()
	if s.Liked("p1") {
		t.Fatal("revert should restore the pre-toggle value")
	}

	// revert after confirm is a no-op
	toggle = s.ToggleLike("p1")
	toggle.Confirm()
	toggle.Revert()
	if !s.Liked("p1") {
		t.Fatal("revert after confirm must not undo the commit")
	}
}

func TestRepostIsTerminal(t *testing.T) {
	s := New()
	if s.AuthorReposted("asha") {
		t.Fatal("fresh state should not suppress anyone")
	}
	s.MarkReposted("asha")
	if !s.AuthorReposted("asha") {
		t.Fatal("author should stay suppressed")
	}
}

func TestBlockPendingDoesNotFilter(t *testing.T) {
	s := New()
	s.MarkBlockPending("ravi", "spam")

	reason, ok := s.BlockPending("ravi")
	if !ok || reason != "spam" {
		t.Fatalf("BlockPending = %q, %v", reason, ok)
	}
	if s.AuthorReposted("ravi") {
		t.Fatal("a pending block must not suppress the author")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	s.ToggleLike("p1").Confirm()
	s.ToggleLike("p2").Confirm()
	s.ToggleLike("p2").Confirm() // unliked again, must not survive export
	s.MarkReposted("asha")
	s.MarkBlockPending("ravi", "spam")

	restored := FromSnapshot(s.Export())

	if !restored.Liked("p1") || restored.Liked("p2") {
		t.Fatal("likes did not round-trip")
	}
	if !restored.AuthorReposted("asha") {
		t.Fatal("reposted authors did not round-trip")
	}
	if reason, ok := restored.BlockPending("ravi"); !ok || reason != "spam" {
		t.Fatal("pending blocks did not round-trip")
	}
}
