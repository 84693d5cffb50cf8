package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	dto "bughunt-platform.com/bughunt-platform/internal/data_models"
	apperrors "bughunt-platform.com/bughunt-platform/internal/errors"
	middleware "bughunt-platform.com/bughunt-platform/internal/http/middlewares"
	"bughunt-platform.com/bughunt-platform/internal/http/validators"
	"bughunt-platform.com/bughunt-platform/internal/services"
)

type Handler struct {
	tasks       *services.TaskService
	imports     *services.ImportService
	leaderboard *services.LeaderboardService
	maxUpload   int64
}

func NewHandler(
	tasks *services.TaskService,
	imports *services.ImportService,
	leaderboard *services.LeaderboardService,
	maxUploadMB int,
) *Handler {
	return &Handler{
		tasks:       tasks,
		imports:     imports,
		leaderboard: leaderboard,
		maxUpload:   int64(maxUploadMB) << 20,
	}
}

// respondError converts service Exceptions into the structured boundary
// error payload; anything else surfaces as a bare 500 without internal
// detail.
func respondError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), publicMessage(err))
}

func publicMessage(err error) string {
	if apperrors.StatusCode(err) == http.StatusInternalServerError {
		return "Something went wrong!"
	}
	return err.Error()
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	if req.UpdatedBy == "" {
		if identity := middleware.IdentityFrom(c); identity != nil {
			req.UpdatedBy = identity.Username
		}
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), services.CreateTaskInput{
		TaskID:      req.TaskID,
		ProjectName: req.ProjectName,
		Industry:    req.Industry,
		ToolLink:    req.ToolLink,
		Batch:       req.Batch,
		Status:      constants.TaskStatus(req.Status),
		UpdatedBy:   req.UpdatedBy,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Task created successfully",
		"task":    task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.tasks.ListTasks(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	taskID := c.Param("taskId")
	if taskID == "" {
		return echo.NewHTTPError(
			apperrors.ErrTaskIDRequired.StatusCode,
			apperrors.ErrTaskIDRequired.Message,
		)
	}

	task, err := h.tasks.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	taskID := c.Param("taskId")
	if taskID == "" {
		return echo.NewHTTPError(
			apperrors.ErrTaskIDRequired.StatusCode,
			apperrors.ErrTaskIDRequired.Message,
		)
	}

	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if req.UpdatedBy == "" {
		if identity := middleware.IdentityFrom(c); identity != nil {
			req.UpdatedBy = identity.Username
		}
	}

	task, err := h.tasks.UpdateStatus(
		c.Request().Context(),
		taskID,
		constants.TaskStatus(req.Status),
		req.UpdatedBy,
	)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Task status updated successfully",
		"updatedTask": task,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID := c.Param("taskId")
	if taskID == "" {
		return echo.NewHTTPError(
			apperrors.ErrTaskIDRequired.StatusCode,
			apperrors.ErrTaskIDRequired.Message,
		)
	}

	task, err := h.tasks.DeleteTask(c.Request().Context(), taskID)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Task deleted",
		"deletedTask": task,
	})
}

func (h *Handler) TaskHistory(c echo.Context) error {
	taskID := c.Param("taskId")
	if taskID == "" {
		return echo.NewHTTPError(
			apperrors.ErrTaskIDRequired.StatusCode,
			apperrors.ErrTaskIDRequired.Message,
		)
	}

	entries, err := h.tasks.TaskHistory(c.Request().Context(), taskID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) BulkUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(
			apperrors.ErrNoFileUploaded.StatusCode,
			apperrors.ErrNoFileUploaded.Message,
		)
	}
	if fileHeader.Size > h.maxUpload {
		return echo.NewHTTPError(http.StatusBadRequest, "uploaded file is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}
	if int64(len(data)) > h.maxUpload {
		return echo.NewHTTPError(http.StatusBadRequest, "uploaded file is too large")
	}

	updatedBy := c.FormValue("updatedBy")
	if updatedBy == "" {
		if identity := middleware.IdentityFrom(c); identity != nil {
			updatedBy = identity.Username
		}
	}

	result, err := h.imports.ImportTasks(c.Request().Context(), data, updatedBy)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Tasks uploaded successfully",
		"tasksCreated": len(result.Created),
		"details": echo.Map{
			"created": len(result.Created),
			"skipped": len(result.Skipped),
			"failed":  len(result.Failed),
		},
		"skippedRows": result.Skipped,
		"errorRows":   result.Failed,
	})
}

func (h *Handler) GetLeaderboard(c echo.Context) error {
	timeRange := constants.TimeRange(c.QueryParam("timeRange"))
	role := constants.Role(c.QueryParam("role"))

	rows, err := h.leaderboard.GetLeaderboard(c.Request().Context(), timeRange, role)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, rows)
}
