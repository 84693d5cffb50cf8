package errors

import "net/http"

var ErrAdminOnly = &Exception{
	Message:    "Admin access required",
	StatusCode: http.StatusForbidden,
}
