package redis

import (
	"context"
	"encoding/json"
	"time"

	"dhvanicast/internal/core/overlay"

	"github.com/go-redis/redis/v8"
)

// DefaultSessionTTL مدت نگهداری وضعیت نشست
//
// Overlay state is session-scoped: the key expiring is what "discard at
// session end" means here. Every save refreshes the TTL.
const DefaultSessionTTL = 30 * time.Minute

type OverlayRepositoryRedis struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewOverlayRepositoryRedis(client *redis.Client) *OverlayRepositoryRedis {
	return &OverlayRepositoryRedis{
		Client: client,
		TTL:    DefaultSessionTTL,
	}
}

func sessionKey(sessionID string) string {
	return "overlay:" + sessionID
}

// Load بازیابی وضعیت نشست؛ نشست ناموجود یک State خالی برمی‌گرداند
func (r *OverlayRepositoryRedis) Load(ctx context.Context, sessionID string) (*overlay.State, error) {
	if sessionID == "" {
		return overlay.New(), nil
	}

	raw, err := r.Client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return overlay.New(), nil
	}
	if err != nil {
		return nil, err
	}

	var snap overlay.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// corrupt session data, start over rather than fail the request
		return overlay.New(), nil
	}
	return overlay.FromSnapshot(snap), nil
}

// Save ذخیره وضعیت نشست با TTL
func (r *OverlayRepositoryRedis) Save(ctx context.Context, sessionID string, state *overlay.State) error {
	if sessionID == "" {
		return nil
	}

	raw, err := json.Marshal(state.Export())
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKey(sessionID), raw, r.TTL).Err()
}
