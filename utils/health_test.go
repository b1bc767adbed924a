package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestHealthSnapshotAvailableBeforeFirstTick(t *testing.T) {
	// Unreachable backends with short timeouts: the check itself must still
	// record a snapshot right away instead of waiting for the first tick.
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	require.NoError(t, err)

	StartHealthMonitor(redisClient, mongoClient)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !GetHealthStatus().CheckedAt.IsZero() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no health snapshot recorded before the first ticker interval")
}
