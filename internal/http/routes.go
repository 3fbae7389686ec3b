package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "todolist.com/todolist/internal/http/middlewares"
)

// NewServer builds the echo instance with the shared middleware stack.
// Any origin may call the API.
func NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	return e
}

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	if rateLimitPerMinute > 0 {
		e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))
	}

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
