// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of the dependencies a booking turn touches:
// the appointment store and the session cache.
type HealthStatus struct {
	AppointmentStore bool      `json:"appointmentStore"`
	SessionCache     bool      `json:"sessionCache"`
	CheckedAt        time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the backing stores once a minute and keeps the
// result in memory for the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client, sessionCache *redis.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status := HealthStatus{
			AppointmentStore: mongoClient.Ping(ctx, nil) == nil,
			SessionCache:     sessionCache.Ping(ctx).Err() == nil,
			CheckedAt:        time.Now(),
		}

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
