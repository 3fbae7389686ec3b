package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todolist.com/todolist/internal/data_models"
	apperrors "todolist.com/todolist/internal/errors"
	"todolist.com/todolist/internal/http/validators"
	"todolist.com/todolist/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return apperrors.StoreFailure(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask passes name and category through untouched; a missing field is
// rejected by the store, not here.
func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bindTaskRequest(c, &req); err != nil {
		return err
	}

	id, err := h.taskService.CreateTask(c.Request().Context(), req.Name, req.Category)
	if err != nil {
		return apperrors.StoreFailure(err)
	}

	return c.JSON(http.StatusOK, dto.CreateTaskResponse{
		Message: "Task added successfully",
		TaskID:  id,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bindTaskRequest(c, &req); err != nil {
		return err
	}

	if err := h.taskService.UpdateTask(c.Request().Context(), id, req.Name, req.Category); err != nil {
		return apperrors.StoreFailure(err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task updated successfully"})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return apperrors.StoreFailure(err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}

// bindTaskRequest reads a JSON body. Bodies of any other content type are
// ignored and leave every field absent.
func bindTaskRequest(c echo.Context, req *dto.TaskRequestData) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return nil
	}
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}
