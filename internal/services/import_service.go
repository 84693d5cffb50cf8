package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	apperrors "bughunt-platform.com/bughunt-platform/internal/errors"
	"bughunt-platform.com/bughunt-platform/internal/importer"
	model "bughunt-platform.com/bughunt-platform/internal/models"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

type ImportService struct {
	tasks *repository.TaskRepository
}

func NewImportService(tasks *repository.TaskRepository) *ImportService {
	return &ImportService{tasks: tasks}
}

// RowIssue pins a problem to a 1-based file row (the header is row 1, so
// the first data row reports as row 2).
type RowIssue struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Created []model.Task `json:"created"`
	Skipped []RowIssue   `json:"skipped"`
	Failed  []RowIssue   `json:"failed"`
}

var requiredColumns = []string{"projectName", "industry", "toolLink"}

// ImportTasks parses a spreadsheet or CSV upload, validates every row
// independently, and inserts the surviving rows as one batch. Rows rejected
// for invalid content land in Failed; rows whose task ID already exists in
// the store, or appeared earlier in the same file, land in Skipped. Nothing
// is written until all rows have been classified.
func (s *ImportService) ImportTasks(ctx context.Context, data []byte, updatedBy string) (*ImportResult, error) {
	sheet, err := importer.Parse(data)
	if err != nil {
		if errors.Is(err, importer.ErrNoData) {
			return nil, apperrors.ErrEmptyFile
		}
		return nil, apperrors.ErrFileParseFailed
	}

	cols := sheet.Columns()

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[importer.NormalizeColumn(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingColumns(missing)
	}

	now := time.Now().UTC()
	result := &ImportResult{
		Created: []model.Task{},
		Skipped: []RowIssue{},
		Failed:  []RowIssue{},
	}

	var toCreate []model.Task
	seen := make(map[string]struct{})

	for i, row := range sheet.Rows {
		rowNum := i + 2

		projectName := cellByName(cols, row, "projectName")
		industry := cellByName(cols, row, "industry")
		toolLink := cellByName(cols, row, "toolLink")

		if projectName == "" || industry == "" || toolLink == "" {
			result.Failed = append(result.Failed, RowIssue{
				Row:    rowNum,
				Reason: "Missing required fields",
			})
			continue
		}

		if !toolLinkPattern.MatchString(toolLink) {
			result.Failed = append(result.Failed, RowIssue{
				Row:    rowNum,
				Reason: "Invalid URL format. Tool link must start with http:// or https://",
			})
			continue
		}

		taskID := cellByName(cols, row, "taskId")
		if taskID == "" {
			taskID = NewTaskID()
		}

		// Out-of-enum statuses are coerced, not rejected.
		status := constants.TaskStatus(cellByName(cols, row, "status"))
		if !constants.IsValidStatus(status) {
			status = constants.StatusUnclaimed
		}

		if _, dup := seen[taskID]; dup {
			result.Skipped = append(result.Skipped, RowIssue{
				Row:    rowNum,
				Reason: fmt.Sprintf("Task with ID %s already exists in this upload", taskID),
			})
			continue
		}

		exists, err := s.tasks.ExistsByTaskID(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped = append(result.Skipped, RowIssue{
				Row:    rowNum,
				Reason: fmt.Sprintf("Task with ID %s already exists", taskID),
			})
			continue
		}

		seen[taskID] = struct{}{}
		toCreate = append(toCreate, model.Task{
			TaskID:      taskID,
			ProjectName: projectName,
			Industry:    industry,
			ToolLink:    toolLink,
			Batch:       cellByName(cols, row, "batch"),
			Status:      status,
			UpdatedBy:   updatedBy,
			LastUpdated: now,
		})
	}

	if err := s.tasks.InsertBatch(ctx, toCreate); err != nil {
		return nil, err
	}

	result.Created = toCreate
	if result.Created == nil {
		result.Created = []model.Task{}
	}

	return result, nil
}

func cellByName(cols map[string]int, row []string, name string) string {
	idx, ok := cols[importer.NormalizeColumn(name)]
	if !ok {
		return ""
	}
	return importer.Cell(row, idx)
}
