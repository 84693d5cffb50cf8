package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	model "bughunt-platform.com/bughunt-platform/internal/models"
)

// HistoryRepository owns the append-only task change log. Rows are written
// once by the status-update path and never touched again.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *model.TaskChangeHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *HistoryRepository) ListByTask(ctx context.Context, taskID string) ([]model.TaskChangeHistory, error) {
	var entries []model.TaskChangeHistory
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("last_updated asc").
		Find(&entries).Error
	return entries, err
}

func (r *HistoryRepository) CountByTask(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskChangeHistory{}).
		Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

type LeaderboardRow struct {
	UserName       string    `json:"userName"`
	Role           string    `json:"role"`
	TasksCompleted int       `json:"tasksCompleted"`
	LastActivity   time.Time `json:"-"`
}

// Leaderboard aggregates transitions into Completed or Reviewed per acting
// user: match by window, optional role join, group by actor, count, order
// by count then most recent activity, truncate. A task marked Completed and
// later Reviewed contributes two counted events.
func (r *HistoryRepository) Leaderboard(
	ctx context.Context,
	since *time.Time,
	role constants.Role,
	limit int,
) ([]LeaderboardRow, error) {
	q := r.db.WithContext(ctx).
		Table("task_change_histories AS h").
		Select("h.change_by AS user_name, COALESCE(MAX(u.role), '') AS role, COUNT(*) AS tasks_completed, MAX(h.last_updated) AS last_activity").
		Where("h.status_change_to IN ?", []constants.TaskStatus{constants.StatusCompleted, constants.StatusReviewed})

	if role != "" {
		q = q.Joins("JOIN users u ON u.username = h.change_by").
			Where("u.role = ?", role)
	} else {
		q = q.Joins("LEFT JOIN users u ON u.username = h.change_by")
	}

	if since != nil {
		q = q.Where("h.last_updated >= ?", *since)
	}

	var rows []LeaderboardRow
	err := q.Group("h.change_by").
		Order("tasks_completed DESC, last_activity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []LeaderboardRow{}
	}
	return rows, nil
}
