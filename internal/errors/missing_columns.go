package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewMissingColumns reports which required header columns were absent from
// an uploaded file. Checked once, before any row is processed.
func NewMissingColumns(columns []string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Missing required columns: %s", strings.Join(columns, ", ")),
		StatusCode: http.StatusBadRequest,
	}
}
