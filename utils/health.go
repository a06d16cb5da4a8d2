package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of dependency health.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor periodically pings Mongo and Redis and records
// the result for the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client) {
	check := func() {
		ctx := context.Background()
		redisHealthy := GetDraftCacheClient().Ping(ctx).Err() == nil &&
			GetAuthCacheClient().Ping(ctx).Err() == nil
		mongoHealthy := mongoClient.Ping(ctx, nil) == nil

		healthMu.Lock()
		currentHealth = HealthStatus{
			Mongo:     mongoHealthy,
			Redis:     redisHealthy,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
