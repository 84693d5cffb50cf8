package model

import (
	"time"

	"bughunt-platform.com/bughunt-platform/internal/constants"
)

// TaskChangeHistory is append-only: one row per status transition, written
// exclusively by the status-update path and never mutated afterwards.
type TaskChangeHistory struct {
	ID             uint                 `gorm:"primaryKey;autoIncrement" json:"-"`
	TaskID         string               `gorm:"index;size:32;not null" json:"taskId"`
	StatusChangeTo constants.TaskStatus `gorm:"type:varchar(20);not null" json:"statusChangeTo"`
	ChangeBy       string               `gorm:"index;not null" json:"changeBy"`
	LastUpdated    time.Time            `gorm:"index" json:"lastUpdated"`
}
