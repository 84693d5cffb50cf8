package model

import (
	"time"

	"bughunt-platform.com/bughunt-platform/internal/constants"
)

type User struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         constants.Role `gorm:"type:varchar(10);not null" json:"role"`
	Approved     bool           `gorm:"not null;default:false" json:"approved"`
	CreatedAt    time.Time      `json:"createdAt"`
}
