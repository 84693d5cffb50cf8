package model

import "time"

// AuthToken is an opaque bearer credential issued at login.
type AuthToken struct {
	Token     string    `gorm:"primaryKey;size:36" json:"token"`
	Username  string    `gorm:"index;not null" json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
}
