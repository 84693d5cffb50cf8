package errors

import "net/http"

var ErrDuplicateTaskID = &Exception{
	Message:    "Task with this ID already exists",
	StatusCode: http.StatusBadRequest,
}
