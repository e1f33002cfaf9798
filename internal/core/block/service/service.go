package blockapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	blockEntity "dhvanicast/internal/core/block"
	blockPort "dhvanicast/internal/ports/block"
	overlayPort "dhvanicast/internal/ports/overlay"

	"github.com/gofrs/uuid"
)

var (
	ErrEmptyTarget = errors.New("blocked user name is required")
	ErrEmptyReason = errors.New("a reason is required")
)

// BlockService سرویس درخواست‌های مسدودسازی
type BlockService struct {
	BlockRepository   blockPort.BlockRequestRepository
	OverlayRepository overlayPort.OverlayRepository
}

func NewBlockService(blockRepo blockPort.BlockRequestRepository, overlayRepo overlayPort.OverlayRepository) *BlockService {
	return &BlockService{
		BlockRepository:   blockRepo,
		OverlayRepository: overlayRepo,
	}
}

// Submit ثبت درخواست مسدودسازی با وضعیت pending
//
// The request never hides the author for the requester; it only records a
// pending state until an admin resolves it.
func (s *BlockService) Submit(ctx context.Context, requesterID, sessionID, blockedUserName, reason, postID string) (*blockPort.RequestDTO, error) {
	blockedUserName = strings.TrimSpace(blockedUserName)
	reason = strings.TrimSpace(reason)
	if blockedUserName == "" {
		return nil, ErrEmptyTarget
	}
	if reason == "" {
		return nil, ErrEmptyReason
	}

	rid, err := uuid.FromString(requesterID)
	if err != nil {
		return nil, fmt.Errorf("invalid requester id: %w", err)
	}

	req := &blockEntity.Request{
		ID:              uuid.Must(uuid.NewV4()),
		RequestedBy:     rid,
		BlockedUserName: blockedUserName,
		Reason:          reason,
		PostID:          postID,
		Status:          blockEntity.StatusPending,
	}

	created, err := s.BlockRepository.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create block request: %w", err)
	}

	// fire-and-forget from the viewer's point of view; the pending marker
	// is cosmetic and must not fail the request
	if sessionID != "" {
		if state, err := s.OverlayRepository.Load(ctx, sessionID); err == nil {
			state.MarkBlockPending(blockedUserName, reason)
			_ = s.OverlayRepository.Save(ctx, sessionID, state)
		}
	}

	return blockPort.ToDTO(created), nil
}

// Pending لیست درخواست‌های در انتظار یک کاربر
func (s *BlockService) Pending(ctx context.Context, requesterID string) ([]*blockPort.RequestDTO, error) {
	reqs, err := s.BlockRepository.PendingByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	out := make([]*blockPort.RequestDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, blockPort.ToDTO(r))
	}
	return out, nil
}
