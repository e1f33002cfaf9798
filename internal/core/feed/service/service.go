package feedapp

import (
	"context"
	"fmt"

	adEntity "dhvanicast/internal/core/ad"
	"dhvanicast/internal/core/feed"
	"dhvanicast/internal/core/feedstore"
	adPort "dhvanicast/internal/ports/ad"
	overlayPort "dhvanicast/internal/ports/overlay"
	postPort "dhvanicast/internal/ports/post"
)

// AdStride هر چند پست یک تبلیغ
const AdStride = 3

type FeedQuery struct {
	ViewerID  string
	SessionID string
	City      string
	Search    string
	Policy    feed.SortPolicy
	Page      int
	Limit     int
}

// TierChecker answers whether a viewer's subscription skips ads.
type TierChecker interface {
	IsAdExempt(ctx context.Context, userID string) bool
}

// FeedService سرویس ساخت فید
//
// The pipeline is store snapshot -> filter -> sort -> paginate -> ad
// interleave; every stage is pure, all state comes in through the ports.
type FeedService struct {
	Pool              *feedstore.Pool
	OverlayRepository overlayPort.OverlayRepository
	AdRepository      adPort.AdRepository
	Tiers             TierChecker
}

func NewFeedService(pool *feedstore.Pool, overlayRepo overlayPort.OverlayRepository, adRepo adPort.AdRepository, tiers TierChecker) *FeedService {
	return &FeedService{
		Pool:              pool,
		OverlayRepository: overlayRepo,
		AdRepository:      adRepo,
		Tiers:             tiers,
	}
}

// BuildFeed دریافت فید صفحه‌بندی‌شده برای یک بیننده
func (s *FeedService) BuildFeed(ctx context.Context, q FeedQuery) (*postPort.FeedPageDTO, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	store := s.Pool.Get(q.City)
	if store.LastRefresh().IsZero() {
		// first hit for this scope, fill the working set synchronously
		if err := store.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("refresh feed scope %q: %w", q.City, err)
		}
	}

	state, err := s.OverlayRepository.Load(ctx, q.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load overlay: %w", err)
	}

	// the store already scoped the fetch; scopeCity here re-applies the
	// exact-match rule over the snapshot so a stale mixed snapshot can
	// never leak another city's posts
	filtered := feed.Filter(store.Snapshot(), state, q.City, q.Search)
	sorted := feed.Sort(filtered, q.Policy)

	total := len(sorted)
	totalPages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	pagePosts := sorted[start:end]

	exempt := q.ViewerID != "" && s.Tiers != nil && s.Tiers.IsAdExempt(ctx, q.ViewerID)
	var supplier feed.AdSupplier
	if !exempt {
		ads, err := s.AdRepository.Active(ctx, q.City)
		if err == nil {
			supplier = adEntity.NewRotation(ads)
		}
		// ad lookup failures degrade to an ad-free page
	}

	items := feed.Interleave(pagePosts, supplier, AdStride, exempt)

	data := make([]postPort.FeedItemDTO, 0, len(items))
	for _, it := range items {
		if it.Post != nil {
			data = append(data, postPort.FeedItemDTO{Post: postPort.FromFeed(*it.Post, state.Liked(it.Post.ID))})
			continue
		}
		data = append(data, postPort.FeedItemDTO{Ad: it.Ad})
	}

	return &postPort.FeedPageDTO{
		Data:       data,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// RepostAuthor suppresses an author for the rest of the viewer's session.
// There is no undo.
func (s *FeedService) RepostAuthor(ctx context.Context, sessionID, authorName string) error {
	state, err := s.OverlayRepository.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load overlay: %w", err)
	}
	state.MarkReposted(authorName)
	if err := s.OverlayRepository.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}
	return nil
}
