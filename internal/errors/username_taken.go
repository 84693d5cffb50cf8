package errors

import "net/http"

var ErrUsernameTaken = &Exception{
	Message:    "Username is already registered",
	StatusCode: http.StatusBadRequest,
}
