package errors

import "net/http"

var ErrInvalidToken = &Exception{
	Message:    "Invalid token. Please log in again.",
	StatusCode: http.StatusUnauthorized,
}
