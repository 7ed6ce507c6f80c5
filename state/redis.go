package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/stsysd/tabimap/model"
)

// RedisStore は固定キーの文字列値として状態を保存します。
type RedisStore struct {
	client *redis.Client
	key    string
}

// RedisOptions は RedisStore の接続設定です。
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisStore はRedisへ接続し、疎通を確認します。
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisStoreWithClient(client, opts.Key), nil
}

// NewRedisStoreWithClient は既存のクライアントから RedisStore を作成します。
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Load は保存済みのコレクションを読み込みます。
func (s *RedisStore) Load(ctx context.Context) (model.Collection, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state from redis: %w", err)
	}

	c, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Save はコレクション全体を有効期限なしで保存します。
func (s *RedisStore) Save(ctx context.Context, c model.Collection) error {
	data, err := encode(c)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state to redis: %w", err)
	}
	return nil
}

// Close はクライアントを閉じます。
func (s *RedisStore) Close() error {
	return s.client.Close()
}
