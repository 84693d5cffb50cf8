package errors

import "net/http"

var ErrInvalidToolLink = &Exception{
	Message:    "Tool link must be a valid URL",
	StatusCode: http.StatusBadRequest,
}
