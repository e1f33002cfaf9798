package block

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Request درخواست مسدودسازی در انتظار بررسی ادمین
//
// Submitting a request never hides the author for the requester; only the
// pending state is visible until an admin resolves it.
type Request struct {
	ID              uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	RequestedBy     uuid.UUID  `gorm:"type:char(36);not null"`
	BlockedUserName string     `gorm:"not null;index"`
	Reason          string     `gorm:"type:varchar(500);not null"`
	PostID          string     `gorm:"type:char(36)"`
	Status          string     `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
	DeletedAt       *time.Time `gorm:"index"`
}
