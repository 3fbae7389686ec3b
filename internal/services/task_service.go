package services

import (
	"context"
	"log"
	"time"

	"todolist.com/todolist/internal/cache"
	model "todolist.com/todolist/internal/models"
	repository "todolist.com/todolist/internal/repositories"
)

type TaskService struct {
	repo     repository.TaskStore
	cache    cache.TaskListCache
	cacheTTL time.Duration
}

func NewTaskService(
	repo repository.TaskStore,
	taskCache cache.TaskListCache,
	cacheTTL time.Duration,
) *TaskService {
	if taskCache == nil {
		taskCache = cache.NopTaskCache{}
	}
	return &TaskService{
		repo:     repo,
		cache:    taskCache,
		cacheTTL: cacheTTL,
	}
}

// ListTasks serves the cached list when it is current. Otherwise it reads
// the store and caches the result under the version seen before the read, so
// a write that lands in between leaves the cached copy unusable.
func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.cache.GetTaskList(ctx)
	if err != nil {
		log.Printf("task cache read failed: %v", err)
	} else if tasks != nil {
		return tasks, nil
	}

	version, versionErr := s.cache.Version(ctx)
	if versionErr != nil {
		log.Printf("task cache version read failed: %v", versionErr)
	}

	tasks, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if versionErr == nil {
		if err := s.cache.SetTaskList(ctx, version, tasks, s.cacheTTL); err != nil {
			log.Printf("task cache write failed: %v", err)
		}
	}

	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, name, category *string) (uint, error) {
	id, err := s.repo.Create(ctx, name, category)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx)
	return id, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, name, category *string) error {
	if err := s.repo.Update(ctx, id, name, category); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("error deleting task %d: %v", id, err)
		return err
	}

	log.Printf("task deleted with id: %d", id)
	s.invalidate(ctx)
	return nil
}

func (s *TaskService) invalidate(ctx context.Context) {
	if err := s.cache.DeleteTaskList(ctx); err != nil {
		log.Printf("task cache invalidation failed: %v", err)
	}
}
