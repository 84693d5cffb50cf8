package errors

import "net/http"

var ErrMissingFields = &Exception{
	Message:    "Missing required fields",
	StatusCode: http.StatusBadRequest,
}
