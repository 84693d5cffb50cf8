package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"time"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	apperrors "bughunt-platform.com/bughunt-platform/internal/errors"
	model "bughunt-platform.com/bughunt-platform/internal/models"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

type TaskService struct {
	tasks   *repository.TaskRepository
	history *repository.HistoryRepository
}

var toolLinkPattern = regexp.MustCompile(`^(http|https)://`)

func NewTaskService(
	tasks *repository.TaskRepository,
	history *repository.HistoryRepository,
) *TaskService {
	return &TaskService{
		tasks:   tasks,
		history: history,
	}
}

// NewTaskID generates a human-readable task identifier in the BH-#### range.
func NewTaskID() string {
	return fmt.Sprintf("BH-%d", 1000+rand.Intn(9000))
}

type CreateTaskInput struct {
	TaskID      string
	ProjectName string
	Industry    string
	ToolLink    string
	Batch       string
	Status      constants.TaskStatus
	UpdatedBy   string
}

// CreateTask applies the same per-row rules as the bulk importer: required
// fields, absolute tool link, defaults for task ID and status, and an
// out-of-enum status silently coerced to Unclaimed.
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if in.ProjectName == "" || in.Industry == "" || in.ToolLink == "" {
		return nil, apperrors.ErrMissingFields
	}
	if !toolLinkPattern.MatchString(in.ToolLink) {
		return nil, apperrors.ErrInvalidToolLink
	}

	if in.TaskID == "" {
		in.TaskID = NewTaskID()
	}
	if !constants.IsValidStatus(in.Status) {
		in.Status = constants.StatusUnclaimed
	}

	exists, err := s.tasks.ExistsByTaskID(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateTaskID
	}

	task := &model.Task{
		TaskID:      in.TaskID,
		ProjectName: in.ProjectName,
		Industry:    in.Industry,
		ToolLink:    in.ToolLink,
		Batch:       in.Batch,
		Status:      in.Status,
		UpdatedBy:   in.UpdatedBy,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateStatus validates the new status, applies it to the task and appends
// one immutable change-history entry. The task update and the history
// append are ordered: the append only runs after a successful update, and
// an append failure is logged but not surfaced, since the history feed is
// derived data.
func (s *TaskService) UpdateStatus(
	ctx context.Context,
	taskID string,
	status constants.TaskStatus,
	actingUser string,
) (*model.Task, error) {
	if !constants.IsValidStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	now := time.Now().UTC()

	task, err := s.tasks.UpdateStatus(ctx, taskID, status, actingUser, now)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	entry := &model.TaskChangeHistory{
		TaskID:         taskID,
		StatusChangeTo: status,
		ChangeBy:       actingUser,
		LastUpdated:    now,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		log.Printf("failed to append change history for task %s: %v", taskID, err)
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByTaskID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) TaskHistory(ctx context.Context, taskID string) ([]model.TaskChangeHistory, error) {
	return s.history.ListByTask(ctx, taskID)
}
