package model

import (
	"time"

	"gorm.io/gorm"
)

// Identity is a logged-in user's durable session record: the gateway analog
// of the token/name/role the browser client kept in local storage. The Key is
// what the gateway's own JWT carries; RemoteToken is the bearer token for the
// remote exam API and never leaves the gateway.
type Identity struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Key         string         `json:"key" gorm:"not null;uniqueIndex"`
	Name        string         `json:"name" gorm:"not null"`
	Role        string         `json:"role" gorm:"not null"`
	RemoteToken string         `json:"-" gorm:"type:text;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
