package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	model "bughunt-platform.com/bughunt-platform/internal/models"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Task{},
		&model.TaskChangeHistory{},
		&model.User{},
		&model.AuthToken{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		db.Exec("DELETE FROM tasks")
		db.Exec("DELETE FROM task_change_histories")
		db.Exec("DELETE FROM users")
		db.Exec("DELETE FROM auth_tokens")
	})

	return db
}

func seedTask(t *testing.T, db *gorm.DB, taskID string, status constants.TaskStatus) *model.Task {
	task := &model.Task{
		TaskID:      taskID,
		ProjectName: "Acme Portal",
		Industry:    "Fintech",
		ToolLink:    "https://portal.acme.example",
		Status:      status,
		LastUpdated: time.Now().UTC(),
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task %s: %v", taskID, err)
	}
	return task
}

func seedUser(t *testing.T, db *gorm.DB, username string, role constants.Role, approved bool) *model.User {
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Approved:     approved,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedHistory(t *testing.T, db *gorm.DB, taskID, changeBy string, status constants.TaskStatus, at time.Time) {
	entry := &model.TaskChangeHistory{
		TaskID:         taskID,
		StatusChangeTo: status,
		ChangeBy:       changeBy,
		LastUpdated:    at,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to seed history for %s: %v", taskID, err)
	}
}

func historyCount(t *testing.T, db *gorm.DB, taskID string) int64 {
	count, err := repository.NewHistoryRepository(db).CountByTask(context.Background(), taskID)
	if err != nil {
		t.Fatalf("failed to count history: %v", err)
	}
	return count
}
