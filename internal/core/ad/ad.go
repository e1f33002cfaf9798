package ad

import (
	"sync"
	"time"

	"dhvanicast/internal/core/feed"

	"github.com/gofrs/uuid"
)

// Ad کمپین تبلیغاتی ذخیره شده
type Ad struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	Sponsor   string     `gorm:"not null"`
	Title     string     `gorm:"not null"`
	ImageURL  string     `gorm:"type:varchar(512)"`
	LinkURL   string     `gorm:"type:varchar(512)"`
	City      string     `gorm:"type:varchar(100);index"` // empty targets every city
	Active    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}

func (a *Ad) ToSlot() feed.AdSlot {
	return feed.AdSlot{
		ID:       a.ID.String(),
		Sponsor:  a.Sponsor,
		Title:    a.Title,
		ImageURL: a.ImageURL,
		LinkURL:  a.LinkURL,
	}
}

// Rotation hands out ads round-robin. It implements feed.AdSupplier.
type Rotation struct {
	mu    sync.Mutex
	slots []feed.AdSlot
	next  int
}

func NewRotation(ads []*Ad) *Rotation {
	r := &Rotation{}
	for _, a := range ads {
		r.slots = append(r.slots, a.ToSlot())
	}
	return r
}

func (r *Rotation) Next() (feed.AdSlot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slots) == 0 {
		return feed.AdSlot{}, false
	}
	slot := r.slots[r.next%len(r.slots)]
	r.next++
	return slot, true
}
