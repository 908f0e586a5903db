package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-now/pkg/resource"
)

func TestConfig(t *testing.T) {
	resource.Set("app.redis.host", "cache.local")
	resource.Set("app.redis.port", 6380)
	resource.Set("app.redis.database", 2)
	resource.Set("app.redis.namespace", "weather-test")
	resource.Set("app.geolocation.cache-ttl", "15m")
	t.Cleanup(func() {
		resource.Set("app.redis.host", "localhost")
		resource.Set("app.redis.port", 6379)
		resource.Set("app.redis.database", 0)
		resource.Set("app.redis.namespace", "weather-now")
		resource.Set("app.geolocation.cache-ttl", "1h")
	})

	config := Config()

	require.NoError(t, config.Validate())
	assert.Equal(t, "cache.local", config.Host)
	assert.Equal(t, 6380, config.Port)
	assert.Equal(t, 2, config.Database)
	assert.Equal(t, "weather-test", config.Namespace)
	assert.Equal(t, 15*time.Minute, config.CacheTTLs["positions"])
}

func TestNewRedisClient_Disabled(t *testing.T) {
	resource.Set("app.redis.enabled", false)

	client, err := NewRedisClient(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_InvalidConfig(t *testing.T) {
	resource.Set("app.redis.enabled", true)
	resource.Set("app.redis.port", 70000)
	t.Cleanup(func() {
		resource.Set("app.redis.enabled", false)
		resource.Set("app.redis.port", 6379)
	})

	client, err := NewRedisClient(context.Background())

	assert.Nil(t, client)
	assert.EqualError(t, err, "invalid redis configuration: invalid port: 70000, must be between 1 and 65535")
}
