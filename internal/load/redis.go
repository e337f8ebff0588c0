package load

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// Connect parses a redis:// URL and verifies the connection.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisSource reads live load values written under agent:load:<name>.
type RedisSource struct {
	client *redis.Client
}

func NewRedisSource(client *redis.Client) *RedisSource {
	return &RedisSource{client: client}
}

func (s *RedisSource) CurrentLoad(ctx context.Context, agentName string) (float64, error) {
	raw, err := s.client.Get(ctx, KeyPrefix+agentName).Result()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("%s: %w", agentName, ErrNoTelemetry)
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", agentName, err)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q", agentName, ErrInvalidValue, raw)
	}
	return v, nil
}

// Publish stores a load reading for an agent. Collectors call it; the router only reads.
func (s *RedisSource) Publish(ctx context.Context, agentName string, load float64) error {
	if load < 0 || load > 1 {
		return fmt.Errorf("%s: %w: %f", agentName, ErrOutOfRange, load)
	}
	return s.client.Set(ctx, KeyPrefix+agentName, strconv.FormatFloat(load, 'f', -1, 64), 0).Err()
}
