package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "todolist.com/todolist/internal/errors"
)

// ErrorHandler renders every failure as a JSON object with a message field.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  *apperrors.Exception
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
	case errors.As(err, &httpErr):
		appErr = &apperrors.Exception{
			Message:    fmt.Sprint(httpErr.Message),
			StatusCode: httpErr.Code,
		}
	default:
		appErr = apperrors.StoreFailure(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(appErr.StatusCode)
	} else {
		err = c.JSON(appErr.StatusCode, appErr)
	}
	if err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}
