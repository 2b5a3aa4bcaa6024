package models

import (
	"time"
)

// RefreshToken is a persisted salesperson session token. Login issues one,
// refresh rotates it, logout revokes it. Expired and revoked rows are
// rejected at refresh time rather than purged.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"size:36;index" json:"userId"`
	Token     string    `gorm:"type:text;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
	IsRevoked bool      `gorm:"default:false" json:"isRevoked"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
