package chat

import (
	"time"

	"github.com/gofrs/uuid"
)

// Message پیام خصوصی بین دو کاربر
type Message struct {
	ID          uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	SenderID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	RecipientID uuid.UUID  `gorm:"type:char(36);not null;index"`
	Body        string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	DeletedAt   *time.Time `gorm:"index"`
}
