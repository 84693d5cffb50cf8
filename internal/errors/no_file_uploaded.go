package errors

import "net/http"

var ErrNoFileUploaded = &Exception{
	Message:    "No file uploaded",
	StatusCode: http.StatusBadRequest,
}
