package ad

import (
	"context"

	"dhvanicast/internal/core/ad"
)

// AdRepository پورت برای کمپین‌های تبلیغاتی
type AdRepository interface {
	Create(ctx context.Context, a *ad.Ad) (*ad.Ad, error)
	// Active returns running campaigns for a city, city-agnostic campaigns
	// included. Empty city returns only the city-agnostic ones.
	Active(ctx context.Context, city string) ([]*ad.Ad, error)
}
