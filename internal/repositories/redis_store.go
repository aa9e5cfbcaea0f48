package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
)

const (
	fieldValue   = "value"
	fieldVersion = "version"
)

// RedisStore is a KVStore backed by one Redis hash per key holding the value
// and its version. Compare-and-set runs under WATCH/MULTI.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store whose keys are namespaced by prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

// Get reads the value and version stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, int64, error) {
	k := s.key(key)
	vals, err := s.client.HMGet(ctx, k, fieldValue, fieldVersion).Result()

	logger.Log.Debugw("redis hmget", "key", k, "error", err)

	if err != nil {
		return "", 0, err
	}
	if len(vals) != 2 || vals[0] == nil {
		return "", 0, ErrNotFound
	}

	value, _ := vals[0].(string)
	var version int64
	if raw, ok := vals[1].(string); ok {
		if version, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return "", 0, err
		}
	}
	return value, version, nil
}

// Set writes value and bumps the version in one MULTI block.
func (s *RedisStore) Set(ctx context.Context, key, value string) (int64, error) {
	k := s.key(key)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, fieldValue, value)
		incr = pipe.HIncrBy(ctx, k, fieldVersion, 1)
		return nil
	})

	logger.Log.Debugw("redis hset", "key", k, "size", len(value), "error", err)

	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// CompareAndSet writes value only if the stored version still equals version.
func (s *RedisStore) CompareAndSet(ctx context.Context, key, value string, version int64) (int64, error) {
	k := s.key(key)
	next := version + 1

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, k, fieldVersion).Int64()
		if errors.Is(err, redis.Nil) {
			current = 0
		} else if err != nil {
			return err
		}
		if current != version {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, fieldValue, value, fieldVersion, next)
			return nil
		})
		return err
	}, k)

	if errors.Is(err, redis.TxFailedErr) {
		err = ErrVersionConflict
	}

	logger.Log.Debugw("redis compare-and-set", "key", k, "version", version, "error", err)

	if err != nil {
		return 0, err
	}
	return next, nil
}
