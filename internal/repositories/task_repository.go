package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	model "todolist.com/todolist/internal/models"
)

// TaskStore is the persistence contract of the task API. Every method maps
// to exactly one SQL statement.
type TaskStore interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, name, category *string) (uint, error)
	Update(ctx context.Context, id uint, name, category *string) error
	Delete(ctx context.Context, id uint) error
}

type TaskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// newTaskRow mirrors model.Task for inserts so that an absent name or
// category is written as NULL and rejected by the table constraint.
type newTaskRow struct {
	ID        uint
	Name      *string
	Category  *string
	Date      time.Time
	Edit      bool
	IsDeleted bool
}

func (newTaskRow) TableName() string {
	return model.Task{}.TableName()
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, name, category *string) (uint, error) {
	row := &newTaskRow{
		Name:      name,
		Category:  category,
		Date:      r.now(),
		Edit:      false,
		IsDeleted: false,
	}

	// Select forces the false booleans into the INSERT instead of leaving
	// them to column defaults.
	err := r.db.WithContext(ctx).
		Select("Name", "Category", "Date", "Edit", "IsDeleted").
		Create(row).Error
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}

	return row.ID, nil
}

// Update overwrites name and category and flags the row as edited. It does
// not check that the row exists.
func (r *TaskRepository) Update(ctx context.Context, id uint, name, category *string) error {
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     name,
			"category": category,
			"edit":     true,
		}).Error
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

// Delete removes the row permanently. is_deleted is not consulted.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
