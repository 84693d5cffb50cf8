package errors

import "net/http"

var ErrFileParseFailed = &Exception{
	Message:    "Failed to parse the uploaded file. Please check the file format.",
	StatusCode: http.StatusBadRequest,
}
