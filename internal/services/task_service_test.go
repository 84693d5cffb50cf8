package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	apperrors "bughunt-platform.com/bughunt-platform/internal/errors"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

func newTaskService(t *testing.T) (*TaskService, *testDeps) {
	db := setupTestDB(t)
	deps := &testDeps{
		db:      db,
		tasks:   repository.NewTaskRepository(db),
		history: repository.NewHistoryRepository(db),
	}
	return NewTaskService(deps.tasks, deps.history), deps
}

func TestUpdateStatus_ValidTransitionsAppendHistory(t *testing.T) {
	service, deps := newTaskService(t)
	ctx := context.Background()

	seedTask(t, deps.db, "BH-2001", constants.StatusUnclaimed)

	for i, status := range constants.AllStatuses {
		task, err := service.UpdateStatus(ctx, "BH-2001", status, "alice")
		if err != nil {
			t.Fatalf("update to %s failed: %v", status, err)
		}
		if task.Status != status {
			t.Errorf("expected status %s, got %s", status, task.Status)
		}
		if task.UpdatedBy != "alice" {
			t.Errorf("expected updatedBy alice, got %s", task.UpdatedBy)
		}

		if got := historyCount(t, deps.db, "BH-2001"); got != int64(i+1) {
			t.Errorf("expected %d history entries, got %d", i+1, got)
		}
	}

	entries, err := deps.history.ListByTask(ctx, "BH-2001")
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	for i, entry := range entries {
		if entry.StatusChangeTo != constants.AllStatuses[i] {
			t.Errorf("entry %d: expected %s, got %s", i, constants.AllStatuses[i], entry.StatusChangeTo)
		}
		if entry.ChangeBy != "alice" {
			t.Errorf("entry %d: expected changeBy alice, got %s", i, entry.ChangeBy)
		}
		if entry.TaskID != "BH-2001" {
			t.Errorf("entry %d: expected taskId BH-2001, got %s", i, entry.TaskID)
		}
	}
}

func TestUpdateStatus_FreeGraphAllowsAnyOrder(t *testing.T) {
	service, deps := newTaskService(t)
	ctx := context.Background()

	seedTask(t, deps.db, "BH-2002", constants.StatusReviewed)

	task, err := service.UpdateStatus(ctx, "BH-2002", constants.StatusUnclaimed, "bob")
	if err != nil {
		t.Fatalf("Reviewed -> Unclaimed should be allowed: %v", err)
	}
	if task.Status != constants.StatusUnclaimed {
		t.Errorf("expected status Unclaimed, got %s", task.Status)
	}
}

func TestUpdateStatus_InvalidStatusWritesNothing(t *testing.T) {
	service, deps := newTaskService(t)
	ctx := context.Background()

	seedTask(t, deps.db, "BH-2003", constants.StatusUnclaimed)

	_, err := service.UpdateStatus(ctx, "BH-2003", "Archived", "alice")
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if got := historyCount(t, deps.db, "BH-2003"); got != 0 {
		t.Errorf("expected no history entries, got %d", got)
	}

	task, _ := service.GetTask(ctx, "BH-2003")
	if task.Status != constants.StatusUnclaimed {
		t.Errorf("task status should be unchanged, got %s", task.Status)
	}
}

func TestUpdateStatus_UnknownTask(t *testing.T) {
	service, _ := newTaskService(t)

	_, err := service.UpdateStatus(context.Background(), "BH-9999", constants.StatusCompleted, "alice")
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCreateTask_DefaultsAndValidation(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, CreateTaskInput{
		ProjectName: "Acme Portal",
		Industry:    "Fintech",
		ToolLink:    "https://portal.acme.example",
		UpdatedBy:   "admin",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasPrefix(task.TaskID, "BH-") {
		t.Errorf("expected generated BH- task id, got %s", task.TaskID)
	}
	if task.Status != constants.StatusUnclaimed {
		t.Errorf("expected default status Unclaimed, got %s", task.Status)
	}

	_, err = service.CreateTask(ctx, CreateTaskInput{
		ProjectName: "Acme Portal",
		ToolLink:    "https://portal.acme.example",
	})
	if !errors.Is(err, apperrors.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}

	_, err = service.CreateTask(ctx, CreateTaskInput{
		ProjectName: "Acme Portal",
		Industry:    "Fintech",
		ToolLink:    "ftp://portal.acme.example",
	})
	if !errors.Is(err, apperrors.ErrInvalidToolLink) {
		t.Errorf("expected ErrInvalidToolLink, got %v", err)
	}
}

func TestCreateTask_CoercesInvalidStatusAndRejectsDuplicates(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, CreateTaskInput{
		TaskID:      "BH-2100",
		ProjectName: "Acme Portal",
		Industry:    "Fintech",
		ToolLink:    "http://portal.acme.example",
		Status:      "Banana",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != constants.StatusUnclaimed {
		t.Errorf("invalid status should coerce to Unclaimed, got %s", task.Status)
	}

	_, err = service.CreateTask(ctx, CreateTaskInput{
		TaskID:      "BH-2100",
		ProjectName: "Other",
		Industry:    "Retail",
		ToolLink:    "http://other.example",
	})
	if !errors.Is(err, apperrors.ErrDuplicateTaskID) {
		t.Errorf("expected ErrDuplicateTaskID, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	service, deps := newTaskService(t)
	ctx := context.Background()

	seedTask(t, deps.db, "BH-2200", constants.StatusUnclaimed)

	deleted, err := service.DeleteTask(ctx, "BH-2200")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.TaskID != "BH-2200" {
		t.Errorf("expected deleted task BH-2200, got %s", deleted.TaskID)
	}

	_, err = service.GetTask(ctx, "BH-2200")
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
}

type testDeps struct {
	db      *gorm.DB
	tasks   *repository.TaskRepository
	history *repository.HistoryRepository
}
