package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// RedisSnapshotKey holds the JSON-encoded latest snapshot.
	RedisSnapshotKey = "geoquiz:snapshot:latest"
	// redisSequenceKey hands out snapshot IDs.
	redisSequenceKey = "geoquiz:snapshot:seq"

	// DefaultRedisTTL bounds how long an abandoned session survives.
	DefaultRedisTTL = 24 * time.Hour

	// redisSaveRetries bounds optimistic transaction retries in Save.
	redisSaveRetries = 5
)

// redisRecord is the stored form of a Snapshot.
type redisRecord struct {
	ID        int          `json:"id"`
	Sequence  int64        `json:"sequence"`
	Timestamp time.Time    `json:"timestamp"`
	Data      SnapshotData `json:"data"`
}

// RedisStore keeps the latest snapshot under a single Redis key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A non-positive ttl uses
// DefaultRedisTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// OpenRedis parses a redis:// URL, connects and pings the server.
func OpenRedis(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client, ttl), nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *RedisStore) SnapshotRepo() SnapshotRepo {
	return &redisSnapshotRepo{client: s.client, ttl: s.ttl}
}

type redisSnapshotRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// Save replaces the stored snapshot unless it holds a higher sequence.
// The check and the write run in one WATCH transaction.
func (r *redisSnapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	prepare(snap)

	txf := func(tx *redis.Tx) error {
		cur, err := readRedisRecord(ctx, tx)
		if err == nil && cur != nil && cur.Sequence > snap.Sequence {
			// A newer capture is already stored.
			return nil
		}

		id, err := tx.Incr(ctx, redisSequenceKey).Result()
		if err != nil {
			return fmt.Errorf("next snapshot id: %w", err)
		}
		data, err := json.Marshal(redisRecord{
			ID:        int(id),
			Sequence:  snap.Sequence,
			Timestamp: snap.Timestamp,
			Data:      snap.Data,
		})
		if err != nil {
			return fmt.Errorf("marshal snapshot data: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, RedisSnapshotKey, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		snap.ID = int(id)
		return nil
	}

	for range redisSaveRetries {
		err := r.client.Watch(ctx, txf, RedisSnapshotKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		return nil
	}
	return fmt.Errorf("save snapshot: %w", redis.TxFailedErr)
}

func (r *redisSnapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	rec, err := readRedisRecord(ctx, r.client)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return &Snapshot{ID: rec.ID, Sequence: rec.Sequence, Timestamp: rec.Timestamp, Data: rec.Data}, nil
}

// redisGetter is satisfied by both *redis.Client and *redis.Tx.
type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// readRedisRecord loads the stored record, or nil when the key is absent.
func readRedisRecord(ctx context.Context, c redisGetter) (*redisRecord, error) {
	data, err := c.Get(ctx, RedisSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}

	var rec redisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &rec, nil
}

// Prune is a no-op: only the latest snapshot is ever stored.
func (r *redisSnapshotRepo) Prune(context.Context, int) error {
	return nil
}

func (r *redisSnapshotRepo) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, RedisSnapshotKey, redisSequenceKey).Err(); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}
