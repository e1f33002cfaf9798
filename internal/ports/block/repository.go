package block

import (
	"context"

	"dhvanicast/internal/core/block"
)

// BlockRequestRepository پورت برای درخواست‌های مسدودسازی
type BlockRequestRepository interface {
	Create(ctx context.Context, req *block.Request) (*block.Request, error)
	PendingByRequester(ctx context.Context, userID string) ([]*block.Request, error)
}

type RequestDTO struct {
	ID              string `json:"id"`
	BlockedUserName string `json:"blockedUserName"`
	Reason          string `json:"reason"`
	PostID          string `json:"postId,omitempty"`
	Status          string `json:"status"`
}

func ToDTO(r *block.Request) *RequestDTO {
	return &RequestDTO{
		ID:              r.ID.String(),
		BlockedUserName: r.BlockedUserName,
		Reason:          r.Reason,
		PostID:          r.PostID,
		Status:          r.Status,
	}
}
