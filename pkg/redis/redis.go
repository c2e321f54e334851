package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrOTPNotFound = errors.New("otp not found or expired")

type IRedis interface {
	SetOTP(ctx context.Context, key string, code string, expiration time.Duration) error
	GetOTP(ctx context.Context, key string) (string, error)
	DeleteOTP(ctx context.Context, key string) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return NewFromClient(client)
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) SetOTP(ctx context.Context, key string, code string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, code, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting OTP for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetOTP(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrOTPNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting OTP for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteOTP(ctx context.Context, key string) error {
	return r.Delete(ctx, key)
}

func (r *redisClient) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	payload, err := jsoniter.ConfigFastest.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching key %s: %v", key, err))
		return err
	}
	return nil
}

// GetJSON decodes the cached value into dest and reports whether the key
// existed.
func (r *redisClient) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if err := jsoniter.ConfigFastest.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *redisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting keys %v: %v", keys, err))
		return err
	}

	logrus.Debug(fmt.Sprintf("Deleted %d of %d redis keys", deleted, len(keys)))
	return nil
}
