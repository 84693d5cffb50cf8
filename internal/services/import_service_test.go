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

func newImportService(t *testing.T) (*ImportService, *gorm.DB) {
	db := setupTestDB(t)
	return NewImportService(repository.NewTaskRepository(db)), db
}

func TestImport_MixedBatch(t *testing.T) {
	service, db := newImportService(t)
	ctx := context.Background()

	seedTask(t, db, "BH-3003", constants.StatusUnclaimed)

	csv := strings.Join([]string{
		"projectName,industry,toolLink,taskId",
		"Acme Portal,Fintech,https://portal.acme.example,BH-3001",
		"Beta Shop,Retail,not-a-url,BH-3002",
		"Gamma API,Health,https://api.gamma.example,BH-3003",
	}, "\n")

	result, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(result.Created) != 1 {
		t.Errorf("expected 1 created, got %d", len(result.Created))
	}
	if len(result.Failed) != 1 || result.Failed[0].Row != 3 {
		t.Errorf("expected row 3 failed, got %+v", result.Failed)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Row != 4 {
		t.Errorf("expected row 4 skipped, got %+v", result.Skipped)
	}

	if result.Created[0].TaskID != "BH-3001" {
		t.Errorf("expected BH-3001 created, got %s", result.Created[0].TaskID)
	}
	if result.Created[0].UpdatedBy != "admin" {
		t.Errorf("expected updatedBy admin, got %s", result.Created[0].UpdatedBy)
	}
}

func TestImport_MissingColumnFailsBeforeRows(t *testing.T) {
	service, db := newImportService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"projectName,industry",
		"Acme Portal,Fintech",
	}, "\n")

	_, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err == nil {
		t.Fatal("expected MissingColumns error")
	}
	if !strings.Contains(err.Error(), "toolLink") {
		t.Errorf("error should name the missing column, got %q", err.Error())
	}
	if apperrors.StatusCode(err) != 400 {
		t.Errorf("expected 400, got %d", apperrors.StatusCode(err))
	}

	var count int64
	db.Table("tasks").Count(&count)
	if count != 0 {
		t.Errorf("no rows should be inserted, found %d", count)
	}
}

func TestImport_HeaderMatchingIsCaseInsensitive(t *testing.T) {
	service, _ := newImportService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"PROJECTNAME,Industry,toollink,TaskID",
		"Acme Portal,Fintech,https://portal.acme.example,BH-3100",
	}, "\n")

	result, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Created) != 1 || result.Created[0].TaskID != "BH-3100" {
		t.Errorf("case-insensitive headers should bind, got %+v", result.Created)
	}
}

func TestImport_InvalidStatusCoercedNotFailed(t *testing.T) {
	service, _ := newImportService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"projectName,industry,toolLink,status",
		"Acme Portal,Fintech,https://portal.acme.example,Banana",
	}, "\n")

	result, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created, got %d created / %d failed", len(result.Created), len(result.Failed))
	}
	if result.Created[0].Status != constants.StatusUnclaimed {
		t.Errorf("invalid status should coerce to Unclaimed, got %s", result.Created[0].Status)
	}
}

func TestImport_DefaultsForOptionalColumns(t *testing.T) {
	service, _ := newImportService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"projectName,industry,toolLink",
		"Acme Portal,Fintech,https://portal.acme.example",
	}, "\n")

	result, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created, got %d", len(result.Created))
	}

	task := result.Created[0]
	if !strings.HasPrefix(task.TaskID, "BH-") || len(task.TaskID) != 7 {
		t.Errorf("expected generated BH-#### id, got %s", task.TaskID)
	}
	if task.Status != constants.StatusUnclaimed {
		t.Errorf("expected default status Unclaimed, got %s", task.Status)
	}
	if task.Batch != "" {
		t.Errorf("expected empty batch, got %s", task.Batch)
	}
}

func TestImport_IntraBatchDuplicateSkippedFromSecondOccurrence(t *testing.T) {
	service, _ := newImportService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"projectName,industry,toolLink,taskId",
		"Acme Portal,Fintech,https://portal.acme.example,BH-3200",
		"Acme Portal Again,Fintech,https://portal.acme.example,BH-3200",
	}, "\n")

	result, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Created) != 1 {
		t.Errorf("expected first occurrence created, got %d", len(result.Created))
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Row != 3 {
		t.Errorf("expected second occurrence skipped at row 3, got %+v", result.Skipped)
	}
}

func TestImport_EmptyFile(t *testing.T) {
	service, _ := newImportService(t)
	ctx := context.Background()

	_, err := service.ImportTasks(ctx, []byte("projectName,industry,toolLink\n"), "admin")
	if !errors.Is(err, apperrors.ErrEmptyFile) {
		t.Errorf("header-only file should report empty, got %v", err)
	}

	_, err = service.ImportTasks(ctx, []byte(""), "admin")
	if !errors.Is(err, apperrors.ErrEmptyFile) {
		t.Errorf("empty file should report empty, got %v", err)
	}
}

func TestImport_MissingRequiredFieldFailsRowOnly(t *testing.T) {
	service, _ := newImportService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"projectName,industry,toolLink",
		",Fintech,https://portal.acme.example",
		"Beta Shop,Retail,https://shop.beta.example",
	}, "\n")

	result, err := service.ImportTasks(ctx, []byte(csv), "admin")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0].Row != 2 {
		t.Errorf("expected row 2 failed, got %+v", result.Failed)
	}
	if result.Failed[0].Reason != "Missing required fields" {
		t.Errorf("unexpected reason %q", result.Failed[0].Reason)
	}
	if len(result.Created) != 1 {
		t.Errorf("row 3 should still be created, got %d created", len(result.Created))
	}
}
