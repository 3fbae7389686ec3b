package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// StoreFailure reports a failed store call as a 500 carrying the driver's
// own error text, with any wrapping context stripped.
func StoreFailure(err error) *Exception {
	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}
	return &Exception{
		Message:    root.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
