package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "todolist.com/todolist/internal/models"
	repository "todolist.com/todolist/internal/repositories"
)

// memoryTaskCache is an in-process stand-in for the Redis cache with the
// same versioning rules.
type memoryTaskCache struct {
	mu            sync.Mutex
	version       int64
	stored        bool
	storedVersion int64
	tasks         []model.Task
	getErr        error
	deletes       int
}

func (m *memoryTaskCache) Version(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version, nil
}

func (m *memoryTaskCache) GetTaskList(ctx context.Context) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if !m.stored || m.storedVersion != m.version {
		return nil, nil
	}
	return m.tasks, nil
}

func (m *memoryTaskCache) SetTaskList(ctx context.Context, version int64, tasks []model.Task, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = true
	m.storedVersion = version
	m.tasks = tasks
	return nil
}

func (m *memoryTaskCache) DeleteTaskList(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version++
	m.stored = false
	m.tasks = nil
	m.deletes++
	return nil
}

// pausingTaskStore holds its first List call after the rows have been read
// until release is closed.
type pausingTaskStore struct {
	*repository.TaskRepository
	once    sync.Once
	listed  chan struct{}
	release chan struct{}
}

func (s *pausingTaskStore) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.TaskRepository.List(ctx)
	s.once.Do(func() {
		close(s.listed)
		<-s.release
	})
	return tasks, err
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func strPtr(s string) *string { return &s }

func TestTaskService_CreateThenList(t *testing.T) {
	service := NewTaskService(repository.NewTaskRepository(setupTestDB(t)), nil, time.Minute)
	ctx := context.Background()

	id, err := service.CreateTask(ctx, strPtr("Buy milk"), strPtr("Rumah"))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	tasks, err := service.ListTasks(ctx)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != id || tasks[0].Edit || tasks[0].IsDeleted {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
}

func TestTaskService_ListServedFromCache(t *testing.T) {
	db := setupTestDB(t)
	taskCache := &memoryTaskCache{}
	service := NewTaskService(repository.NewTaskRepository(db), taskCache, time.Minute)
	ctx := context.Background()

	if _, err := service.CreateTask(ctx, strPtr("a"), strPtr("Kerja")); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := service.ListTasks(ctx); err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}

	// A row written behind the service's back stays invisible until a
	// write through the service drops the cached list.
	db.Create(&model.Task{Name: "b", Category: "Kerja", Date: time.Now()})

	tasks, _ := service.ListTasks(ctx)
	if len(tasks) != 1 {
		t.Fatalf("expected cached list of 1, got %d", len(tasks))
	}

	if err := service.UpdateTask(ctx, tasks[0].ID, strPtr("a2"), strPtr("Kerja")); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	tasks, _ = service.ListTasks(ctx)
	if len(tasks) != 2 {
		t.Errorf("expected fresh list of 2 after invalidation, got %d", len(tasks))
	}
}

func TestTaskService_WriteDuringListFillIsNotHidden(t *testing.T) {
	store := &pausingTaskStore{
		TaskRepository: repository.NewTaskRepository(setupTestDB(t)),
		listed:         make(chan struct{}),
		release:        make(chan struct{}),
	}
	service := NewTaskService(store, &memoryTaskCache{}, time.Minute)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := service.ListTasks(ctx)
		done <- err
	}()

	<-store.listed
	if _, err := service.CreateTask(ctx, strPtr("Buy milk"), strPtr("Rumah")); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	close(store.release)

	if err := <-done; err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}

	tasks, err := service.ListTasks(ctx)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Buy milk" {
		t.Errorf("expected the created task after the write, got %+v", tasks)
	}
}

func TestTaskService_EmptyListIsCached(t *testing.T) {
	db := setupTestDB(t)
	taskCache := &memoryTaskCache{}
	service := NewTaskService(repository.NewTaskRepository(db), taskCache, time.Minute)
	ctx := context.Background()

	if _, err := service.ListTasks(ctx); err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	db.Create(&model.Task{Name: "b", Category: "Kerja", Date: time.Now()})

	tasks, err := service.ListTasks(ctx)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected the cached empty list, got %+v", tasks)
	}
}

func TestTaskService_WritesInvalidateCache(t *testing.T) {
	taskCache := &memoryTaskCache{}
	service := NewTaskService(repository.NewTaskRepository(setupTestDB(t)), taskCache, time.Minute)
	ctx := context.Background()

	id, _ := service.CreateTask(ctx, strPtr("a"), strPtr("Kerja"))
	_ = service.UpdateTask(ctx, id, strPtr("b"), strPtr("Kerja"))
	_ = service.DeleteTask(ctx, id)

	if taskCache.deletes != 3 {
		t.Errorf("expected 3 invalidations, got %d", taskCache.deletes)
	}
}

func TestTaskService_FailedWriteKeepsCache(t *testing.T) {
	taskCache := &memoryTaskCache{}
	service := NewTaskService(repository.NewTaskRepository(setupTestDB(t)), taskCache, time.Minute)

	if _, err := service.CreateTask(context.Background(), nil, strPtr("Kerja")); err == nil {
		t.Fatal("expected constraint violation")
	}
	if taskCache.deletes != 0 {
		t.Errorf("expected no invalidation on failure, got %d", taskCache.deletes)
	}
}

func TestTaskService_CacheErrorFallsBackToStore(t *testing.T) {
	taskCache := &memoryTaskCache{getErr: errors.New("connection refused")}
	service := NewTaskService(repository.NewTaskRepository(setupTestDB(t)), taskCache, time.Minute)
	ctx := context.Background()

	_, _ = service.CreateTask(ctx, strPtr("a"), strPtr("Kerja"))

	tasks, err := service.ListTasks(ctx)
	if err != nil {
		t.Fatalf("cache errors must not fail the list: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
}

func TestTaskService_DeleteMissingIDSucceeds(t *testing.T) {
	service := NewTaskService(repository.NewTaskRepository(setupTestDB(t)), nil, time.Minute)

	if err := service.DeleteTask(context.Background(), 99); err != nil {
		t.Errorf("expected success, got %v", err)
	}
}

func TestTaskService_ConcurrentUpdatesLastWriteWins(t *testing.T) {
	service := NewTaskService(repository.NewTaskRepository(setupTestDB(t)), nil, time.Minute)
	ctx := context.Background()
	id, _ := service.CreateTask(ctx, strPtr("start"), strPtr("Kerja"))

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		go func(idx int) {
			defer wg.Done()
			if err := service.UpdateTask(ctx, id, strPtr(fmt.Sprintf("name-%d", idx)), strPtr("Kerja")); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}

	tasks, _ := service.ListTasks(ctx)
	if len(tasks) != 1 || !strings.HasPrefix(tasks[0].Name, "name-") || !tasks[0].Edit {
		t.Errorf("unexpected final row: %+v", tasks)
	}
}

func TestTaskService_UnavailableStore(t *testing.T) {
	connErr := errors.New("unable to open database file")
	service := NewTaskService(repository.NewUnavailableRepository(connErr), nil, time.Minute)

	if _, err := service.ListTasks(context.Background()); !errors.Is(err, connErr) {
		t.Errorf("expected %v, got %v", connErr, err)
	}
}
