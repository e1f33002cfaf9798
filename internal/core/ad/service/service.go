package adapp

import (
	"context"
	"errors"
	"fmt"

	adEntity "dhvanicast/internal/core/ad"
	"dhvanicast/internal/core/feed"
	adPort "dhvanicast/internal/ports/ad"

	"github.com/gofrs/uuid"
)

var ErrMissingFields = errors.New("sponsor and title are required")

// AdService سرویس کمپین‌های تبلیغاتی
type AdService struct {
	AdRepository adPort.AdRepository
}

func NewAdService(repo adPort.AdRepository) *AdService {
	return &AdService{AdRepository: repo}
}

// CreateAd ثبت کمپین جدید
func (s *AdService) CreateAd(ctx context.Context, sponsor, title, imageURL, linkURL, city string) (*feed.AdSlot, error) {
	if sponsor == "" || title == "" {
		return nil, ErrMissingFields
	}

	a := &adEntity.Ad{
		ID:       uuid.Must(uuid.NewV4()),
		Sponsor:  sponsor,
		Title:    title,
		ImageURL: imageURL,
		LinkURL:  linkURL,
		City:     city,
		Active:   true,
	}

	created, err := s.AdRepository.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	slot := created.ToSlot()
	return &slot, nil
}

// ListActive کمپین‌های فعال یک شهر
func (s *AdService) ListActive(ctx context.Context, city string) ([]feed.AdSlot, error) {
	ads, err := s.AdRepository.Active(ctx, city)
	if err != nil {
		return nil, err
	}
	slots := make([]feed.AdSlot, 0, len(ads))
	for _, a := range ads {
		slots = append(slots, a.ToSlot())
	}
	return slots, nil
}
