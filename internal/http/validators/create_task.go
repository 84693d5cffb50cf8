package validators

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	dto "bughunt-platform.com/bughunt-platform/internal/data_models"
)

var toolLinkPattern = regexp.MustCompile(`^(http|https)://`)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.ProjectName == "" || r.Industry == "" || r.ToolLink == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	if !toolLinkPattern.MatchString(r.ToolLink) {
		return echo.NewHTTPError(http.StatusBadRequest, "Tool link must be a valid URL")
	}
	return nil
}
