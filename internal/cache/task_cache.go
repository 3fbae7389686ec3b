package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	model "todolist.com/todolist/internal/models"
)

const (
	taskListKey        = "tasks:list"
	taskListVersionKey = "tasks:list:version"
)

// TaskListCache holds the full task list between writes.
//
// Every invalidation bumps a version. A list is stored together with the
// version read before the store was queried, and it is only served while that
// version is still current, so a fill that raced with a write is never
// returned. A nil slice with a nil error from GetTaskList is a miss.
type TaskListCache interface {
	Version(ctx context.Context) (int64, error)
	GetTaskList(ctx context.Context) ([]model.Task, error)
	SetTaskList(ctx context.Context, version int64, tasks []model.Task, ttl time.Duration) error
	DeleteTaskList(ctx context.Context) error
}

// cachedTaskList is the value stored under taskListKey.
type cachedTaskList struct {
	Version int64        `json:"version"`
	Tasks   []model.Task `json:"tasks"`
}

type RedisTaskCache struct {
	client rueidis.Client
}

func NewRedisTaskCache(client rueidis.Client) *RedisTaskCache {
	return &RedisTaskCache{client: client}
}

func (r *RedisTaskCache) Version(ctx context.Context) (int64, error) {
	v, err := r.client.Do(ctx, r.client.B().Get().Key(taskListVersionKey).Build()).AsInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}

func (r *RedisTaskCache) GetTaskList(ctx context.Context) ([]model.Task, error) {
	cmd := r.client.B().Mget().Key(taskListKey, taskListVersionKey).Build()
	vals, err := r.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 || vals[0].IsNil() {
		return nil, nil
	}

	var current int64
	if !vals[1].IsNil() {
		if current, err = vals[1].AsInt64(); err != nil {
			return nil, err
		}
	}

	raw, err := vals[0].ToString()
	if err != nil {
		return nil, err
	}

	var entry cachedTaskList
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, err
	}
	if entry.Version != current {
		return nil, nil
	}
	if entry.Tasks == nil {
		entry.Tasks = []model.Task{}
	}
	return entry.Tasks, nil
}

func (r *RedisTaskCache) SetTaskList(ctx context.Context, version int64, tasks []model.Task, ttl time.Duration) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(cachedTaskList{Version: version, Tasks: tasks})
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(taskListKey).Value(rueidis.BinaryString(data)).
		ExSeconds(int64(ttl / time.Second)).Build()
	return r.client.Do(ctx, cmd).Error()
}

// DeleteTaskList bumps the version before dropping the stored list.
func (r *RedisTaskCache) DeleteTaskList(ctx context.Context) error {
	for _, resp := range r.client.DoMulti(ctx,
		r.client.B().Incr().Key(taskListVersionKey).Build(),
		r.client.B().Del().Key(taskListKey).Build(),
	) {
		if err := resp.Error(); err != nil {
			return err
		}
	}
	return nil
}

// NopTaskCache always misses. It is used when no Redis address is configured.
type NopTaskCache struct{}

func (NopTaskCache) Version(context.Context) (int64, error) { return 0, nil }

func (NopTaskCache) GetTaskList(context.Context) ([]model.Task, error) { return nil, nil }

func (NopTaskCache) SetTaskList(context.Context, int64, []model.Task, time.Duration) error {
	return nil
}

func (NopTaskCache) DeleteTaskList(context.Context) error { return nil }
