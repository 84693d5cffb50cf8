package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "Role must be hunter or coach",
	StatusCode: http.StatusBadRequest,
}
