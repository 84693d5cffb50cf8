package errors

import "net/http"

var ErrTokenExpired = &Exception{
	Message:    "Token expired. Please log in again.",
	StatusCode: http.StatusUnauthorized,
}
