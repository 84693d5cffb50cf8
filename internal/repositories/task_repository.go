package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	model "bughunt-platform.com/bughunt-platform/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrTaskNotFound = errors.New("task not found")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// InsertBatch writes all tasks in one statement. The caller is responsible
// for having validated and deduplicated the slice beforehand.
func (r *TaskRepository) InsertBatch(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *TaskRepository) FindByTaskID(ctx context.Context, taskID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "task_id = ?", taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ExistsByTaskID(ctx context.Context, taskID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("task_id = ?", taskID).Count(&count).Error
	return count > 0, err
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("last_updated desc").Find(&tasks).Error
	return tasks, err
}

// UpdateStatus changes status, updated_by and last_updated in a single
// statement; the store's per-row atomicity is the only guarantee relied on.
// Concurrent updates to the same task race at last-write-wins.
func (r *TaskRepository) UpdateStatus(
	ctx context.Context,
	taskID string,
	status constants.TaskStatus,
	updatedBy string,
	at time.Time,
) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("task_id = ?", taskID).
		Updates(map[string]interface{}{
			"status":       status,
			"updated_by":   updatedBy,
			"last_updated": at,
		})

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	return r.FindByTaskID(ctx, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := r.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "task_id = ?", taskID).Error; err != nil {
		return nil, err
	}

	return task, nil
}
