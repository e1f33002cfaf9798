package user

import (
	"time"

	"github.com/gofrs/uuid"
)

// Tier سطح اشتراک کاربر
type Tier string

const (
	TierFree  Tier = "free"
	TierPlus  Tier = "plus"
	TierPrime Tier = "prime" // ad-exempt
)

type User struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	Name      string     `gorm:"not null"`
	Username  string     `gorm:"unique;not null"`
	Mobile    string     `gorm:"unique;not null"`
	Password  string     `gorm:"not null"`
	AvatarURL string     `gorm:"type:varchar(512)"`
	City      string     `gorm:"type:varchar(100);index"`
	Tier      Tier       `gorm:"type:varchar(16);default:'free'"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}

// AdExempt reports whether the subscription tier skips sponsored slots.
func (u *User) AdExempt() bool {
	return u.Tier == TierPrime
}
