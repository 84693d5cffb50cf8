package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "Invalid username or password",
	StatusCode: http.StatusUnauthorized,
}
