package cache

import (
	"context"
	"fmt"
	"time"

	"weather-now/pkg/log"
	"weather-now/pkg/redis"
	"weather-now/pkg/resource"
)

const connectTimeout = 5 * time.Second

// Enabled reports whether app.redis.enabled is set
func Enabled() bool {
	return resource.GetBool("app.redis.enabled")
}

// Config builds the Redis configuration from the app.redis.* properties
func Config() *redis.Config {
	return redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithNamespace(resource.GetString("app.redis.namespace")).
		WithCacheTTL("positions", resource.GetDuration("app.geolocation.cache-ttl"))
}

// NewRedisClient connects to Redis when it is enabled. It returns nil, nil when Redis is disabled.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	if !Enabled() {
		return nil, nil
	}

	config := Config()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid redis configuration: %w", err)
	}

	client := redis.NewClient(config)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s:%d: %w", config.Host, config.Port, err)
	}

	log.Infof("Connected to redis at %s:%d (db %d)", config.Host, config.Port, config.Database)
	return client, nil
}
