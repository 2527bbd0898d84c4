package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

// redisCollection mirrors a collection into a redis hash plus an order
// list, keeping the same data shape and ordering as the memory backend.
// Only per-key atomicity is guaranteed.
type redisCollection[T any] struct {
	rdb *redis.Client
	key string
}

func newRedisCollection[T any](rdb *redis.Client, key string) *redisCollection[T] {
	return &redisCollection[T]{rdb: rdb, key: key}
}

func (c *redisCollection[T]) orderKey() string {
	return c.key + ":order"
}

func (c *redisCollection[T]) List(ctx context.Context) ([]T, error) {
	ids, err := c.rdb.LRange(ctx, c.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s order: %w", c.key, err)
	}

	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	vals, err := c.rdb.HMGet(ctx, c.key, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.key, err)
	}

	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", c.key, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

func (c *redisCollection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	raw, err := c.rdb.HGet(ctx, c.key, id).Result()
	if err == redis.Nil {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("get %s/%s: %w", c.key, id, err)
	}

	var rec T
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return zero, fmt.Errorf("decode %s/%s: %w", c.key, id, err)
	}

	return rec, nil
}

func (c *redisCollection[T]) Put(ctx context.Context, id string, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.key, id, err)
	}

	exists, err := c.rdb.HExists(ctx, c.key, id).Result()
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", c.key, id, err)
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key, id, raw)
	if !exists {
		pipe.RPush(ctx, c.orderKey(), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put %s/%s: %w", c.key, id, err)
	}

	return nil
}

func (c *redisCollection[T]) Delete(ctx context.Context, id string) error {
	removed, err := c.rdb.HDel(ctx, c.key, id).Result()
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.key, id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}

	if err := c.rdb.LRem(ctx, c.orderKey(), 1, id).Err(); err != nil {
		return fmt.Errorf("delete %s/%s order: %w", c.key, id, err)
	}

	return nil
}

// NewRedisStore returns the mirror backend: the same record shapes held in
// redis under the original key space, behaviorally equivalent to the
// memory store from the caller's perspective.
func NewRedisStore(rdb *redis.Client) *Store {
	return &Store{
		Users:         newRedisCollection[entity.User](rdb, KeyUsers),
		Attendance:    newRedisCollection[entity.AttendanceRecord](rdb, KeyAttendance),
		Leaves:        newRedisCollection[entity.LeaveRequest](rdb, KeyLeaves),
		Payroll:       newRedisCollection[entity.PayrollRecord](rdb, KeyPayroll),
		Files:         newRedisCollection[entity.UploadedFile](rdb, KeyFiles),
		Announcements: newRedisCollection[entity.Announcement](rdb, KeyAnnouncements),
	}
}
