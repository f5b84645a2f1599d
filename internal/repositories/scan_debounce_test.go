package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestScanDebounceRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewScanDebounceRepository(rdb, 2*time.Second)

	t.Run("first scan acquires, repeat is suppressed", func(t *testing.T) {
		ok, err := repo.TryAcquire(ctx, "AB-12")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.TryAcquire(ctx, "AB-12")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tags are independent", func(t *testing.T) {
		ok, err := repo.TryAcquire(ctx, "CD-34")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("release reopens the window", func(t *testing.T) {
		_, err := repo.TryAcquire(ctx, "EF-56")
		require.NoError(t, err)
		require.NoError(t, repo.Release(ctx, "EF-56"))

		ok, err := repo.TryAcquire(ctx, "EF-56")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("window expires", func(t *testing.T) {
		ok, err := repo.TryAcquire(ctx, "GH-78")
		require.NoError(t, err)
		require.True(t, ok)

		time.Sleep(3 * time.Second)

		ok, err = repo.TryAcquire(ctx, "GH-78")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
