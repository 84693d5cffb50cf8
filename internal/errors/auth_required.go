package errors

import "net/http"

var ErrAuthRequired = &Exception{
	Message:    "Authentication required. No token provided.",
	StatusCode: http.StatusUnauthorized,
}
