package validators

import (
	"strconv"

	apperrors "todolist.com/todolist/internal/errors"
)

// ParseTaskID reads the :id path segment. Only positive integers are ids.
func ParseTaskID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}
