package errors

import "net/http"

var ErrEmptyFile = &Exception{
	Message:    "The uploaded file contains no data",
	StatusCode: http.StatusBadRequest,
}
