package feed

import (
	"sort"
	"strings"
	"time"
)

// Kind تعیین‌کننده نوع محتوای پست
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindThought Kind = "thought"
	KindPoll    Kind = "poll"
)

// Payload is the kind-specific content of a post.
type Payload interface {
	Kind() Kind
}

type ImagePayload struct {
	Images []string
}

func (ImagePayload) Kind() Kind { return KindImage }

type VideoPayload struct {
	VideoURL string
}

func (VideoPayload) Kind() Kind { return KindVideo }

type ThoughtPayload struct{}

func (ThoughtPayload) Kind() Kind { return KindThought }

type PollPayload struct {
	Options []string
	Votes   []int
}

func (PollPayload) Kind() Kind { return KindPoll }

// Post is an immutable feed record. The pipeline never mutates it.
type Post struct {
	ID              string
	AuthorName      string
	AuthorAvatarURL string
	City            string
	Caption         string
	Tags            []string
	Payload         Payload
	Likes           int
	Views           int
	CommentsCount   int
	CreatedAt       time.Time
}

// Overlay exposes the per-session view state the filter consults.
type Overlay interface {
	AuthorReposted(name string) bool
}

// Filter applies repost suppression, the optional city scope and the optional
// free-text query, in that order. The input slice is never modified and the
// relative order of surviving posts is preserved.
func Filter(posts []Post, overlay Overlay, scopeCity, query string) []Post {
	out := make([]Post, 0, len(posts))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, p := range posts {
		if overlay != nil && overlay.AuthorReposted(p.AuthorName) {
			continue
		}
		// city match is exact and case-sensitive
		if scopeCity != "" && p.City != scopeCity {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Caption), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// SortPolicy انتخاب سیاست مرتب‌سازی فید
type SortPolicy string

const (
	SortTrending SortPolicy = "trending"
	SortLatest   SortPolicy = "latest"
	SortOldest   SortPolicy = "oldest"
)

// TrendingScore weights comments over likes over raw views.
func TrendingScore(p Post) int {
	return p.Views + p.Likes*2 + p.CommentsCount*3
}

// Sort returns a new slice ordered by the given policy. The sort is stable so
// that ties keep their input order, which keeps pagination reproducible.
// Unknown policies fall back to latest.
func Sort(posts []Post, policy SortPolicy) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)

	switch policy {
	case SortTrending:
		sort.SliceStable(out, func(i, j int) bool {
			return TrendingScore(out[i]) > TrendingScore(out[j])
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	default: // latest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// AdSlot is sponsored content injected between posts.
type AdSlot struct {
	ID       string `json:"id"`
	Sponsor  string `json:"sponsor"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
	LinkURL  string `json:"linkUrl,omitempty"`
}

// AdSupplier hands out the next ad to show. ok=false means no ad available,
// in which case the slot is skipped.
type AdSupplier interface {
	Next() (AdSlot, bool)
}

// Item is one rendered feed entry: either a post or an ad slot.
type Item struct {
	Post *Post   `json:"post,omitempty"`
	Ad   *AdSlot `json:"ad,omitempty"`
}

// Interleave inserts one ad slot after every stride-th post. Exempt viewers
// get the posts unchanged. An ad never consumes a post position, so the
// result holds len(posts) + len(posts)/stride items.
func Interleave(posts []Post, ads AdSupplier, stride int, exempt bool) []Item {
	items := make([]Item, 0, len(posts))
	if exempt || stride <= 0 || ads == nil {
		for i := range posts {
			items = append(items, Item{Post: &posts[i]})
		}
		return items
	}

	for i := range posts {
		items = append(items, Item{Post: &posts[i]})
		if (i+1)%stride == 0 {
			if slot, ok := ads.Next(); ok {
				items = append(items, Item{Ad: &slot})
			}
		}
	}
	return items
}
