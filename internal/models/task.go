package model

import (
	"time"

	"bughunt-platform.com/bughunt-platform/internal/constants"
)

type Task struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"-"`
	TaskID      string               `gorm:"uniqueIndex;size:32;not null" json:"taskId"`
	ProjectName string               `gorm:"not null" json:"projectName"`
	Industry    string               `gorm:"not null" json:"industry"`
	ToolLink    string               `gorm:"not null" json:"toolLink"`
	Batch       string               `json:"batch,omitempty"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;default:Unclaimed" json:"status"`
	UpdatedBy   string               `json:"updatedBy"`
	LastUpdated time.Time            `json:"lastUpdated"`
}
