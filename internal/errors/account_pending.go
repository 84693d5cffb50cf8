package errors

import "net/http"

var ErrAccountPending = &Exception{
	Message:    "Account is pending admin approval",
	StatusCode: http.StatusForbidden,
}
