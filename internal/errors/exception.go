package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error carrying the HTTP status it maps to at
// the request boundary. Sentinels live one per file in this package.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode resolves the boundary status for any error; non-Exception
// errors surface as 500 without leaking internal detail.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
