package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Probe reports whether one external dependency answers.
type Probe func(ctx context.Context) error

// MongoProbe pings the document store.
func MongoProbe(client *mongo.Client) Probe {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

// RedisProbe pings the transcript cache.
func RedisProbe(client *redis.Client) Probe {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// HealthMonitor keeps the latest health snapshot in memory.
type HealthMonitor struct {
	probes map[string]Probe

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(probes map[string]Probe) *HealthMonitor {
	return &HealthMonitor{probes: probes}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs every probe once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	checks := make(map[string]bool, len(m.probes))
	for name, probe := range m.probes {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := probe(pctx)
		cancel()
		if err != nil {
			GetLogger().Warn("Health probe failed", zap.String("dependency", name), zap.Error(err))
		}
		checks[name] = err == nil
	}

	status := HealthStatus{Checks: checks, CheckedAt: time.Now()}
	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		m.Check(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
