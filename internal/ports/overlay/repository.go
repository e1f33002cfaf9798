package overlay

import (
	"context"

	"dhvanicast/internal/core/overlay"
)

// OverlayRepository پورت برای وضعیت نشست هر کاربر
//
// Sessions expire with their keys; a missing session loads as a fresh,
// empty state.
type OverlayRepository interface {
	Load(ctx context.Context, sessionID string) (*overlay.State, error)
	Save(ctx context.Context, sessionID string, state *overlay.State) error
}
