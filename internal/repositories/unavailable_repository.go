package repository

import (
	"context"

	model "todolist.com/todolist/internal/models"
)

// UnavailableRepository stands in when the database could not be reached at
// startup. The server keeps running and every call reports the original
// connection error.
type UnavailableRepository struct {
	err error
}

func NewUnavailableRepository(err error) *UnavailableRepository {
	return &UnavailableRepository{err: err}
}

func (r *UnavailableRepository) List(context.Context) ([]model.Task, error) {
	return nil, r.err
}

func (r *UnavailableRepository) Create(context.Context, *string, *string) (uint, error) {
	return 0, r.err
}

func (r *UnavailableRepository) Update(context.Context, uint, *string, *string) error {
	return r.err
}

func (r *UnavailableRepository) Delete(context.Context, uint) error {
	return r.err
}
