package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	middleware "bughunt-platform.com/bughunt-platform/internal/http/middlewares"
	"bughunt-platform.com/bughunt-platform/internal/services"
)

func Register(
	e *echo.Echo,
	h *Handler,
	ah *AuthHandler,
	auth *services.AuthService,
	rateLimitPerMinute int,
) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Server is running"})
	})
	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
	})

	authn := middleware.Auth(auth)
	adminOnly := middleware.AdminOnly()

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", ah.Register)
	authGroup.POST("/login", ah.Login)
	authGroup.GET("/pending-users", ah.PendingUsers, authn, adminOnly)
	authGroup.POST("/approve-user", ah.ApproveUser, authn, adminOnly)
	authGroup.POST("/reject-user", ah.RejectUser, authn, adminOnly)

	taskGroup := e.Group("/api/task", authn)
	taskGroup.POST("/add", h.CreateTask)
	taskGroup.GET("", h.ListTasks)
	taskGroup.GET("/:taskId", h.GetTask)
	taskGroup.GET("/history/:taskId", h.TaskHistory)
	taskGroup.PATCH("/update-status/:taskId", h.UpdateTaskStatus)
	taskGroup.DELETE("/:taskId", h.DeleteTask, adminOnly)
	taskGroup.POST("/bulk-upload", h.BulkUpload)

	e.GET("/api/leaderboard", h.GetLeaderboard, authn)
}
