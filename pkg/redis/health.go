package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *Client
	timeout   time.Duration
	lastCheck time.Time
	lastError string
	mu        sync.Mutex
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 5 * time.Second,
	}
}

// HealthCheck pings Redis and runs a set/get/delete round trip on a probe key
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	pingResult := h.testPing(ctx)
	operationResult := pingResult && h.testBasicOperations(ctx)

	status := StatusDown
	if pingResult && operationResult {
		status = StatusUp
		h.lastError = ""
	}
	h.lastCheck = time.Now()

	config := h.client.GetConfig()
	return RedisHealthCheck{
		Status: status,
		Details: map[string]string{
			"host":                  config.Host,
			"port":                  strconv.Itoa(config.Port),
			"database":              strconv.Itoa(config.Database),
			"ping_successful":       strconv.FormatBool(pingResult),
			"operations_successful": strconv.FormatBool(operationResult),
			"last_check":            h.lastCheck.Format(time.RFC3339),
			"last_error":            h.lastError,
		},
	}
}

// testPing tests basic connectivity to Redis
func (h *HealthChecker) testPing(ctx context.Context) bool {
	if err := h.client.Ping(ctx); err != nil {
		h.lastError = fmt.Sprintf("ping failed: %v", err)
		return false
	}
	return true
}

// testBasicOperations tests basic Redis operations
func (h *HealthChecker) testBasicOperations(ctx context.Context) bool {
	testKey := "health_check_test"
	testValue := "test_value"

	if err := h.client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		h.lastError = fmt.Sprintf("set operation failed: %v", err)
		return false
	}

	value, err := h.client.Get(ctx, testKey)
	if err != nil {
		h.lastError = fmt.Sprintf("get operation failed: %v", err)
		return false
	}
	if value != testValue {
		h.lastError = fmt.Sprintf("value mismatch: expected %s, got %s", testValue, value)
		return false
	}

	if err := h.client.Delete(ctx, testKey); err != nil {
		h.lastError = fmt.Sprintf("delete operation failed: %v", err)
		return false
	}
	return true
}
