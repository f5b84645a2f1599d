package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
)

// ScanDebounceRepository suppresses repeated launches for a tag that is
// reported several times within a short window.
type ScanDebounceRepository struct {
	client *redis.Client
	window time.Duration
}

// NewScanDebounceRepository creates a repository with the given debounce window.
func NewScanDebounceRepository(client *redis.Client, window time.Duration) *ScanDebounceRepository {
	return &ScanDebounceRepository{
		client: client,
		window: window,
	}
}

func scanKey(uid string) string {
	return fmt.Sprintf("rfid_scan:%s", uid)
}

// TryAcquire reports whether uid may launch now. It returns false while a
// previous acquisition for the same uid is still inside the window.
func (r *ScanDebounceRepository) TryAcquire(ctx context.Context, uid string) (bool, error) {
	key := scanKey(uid)
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), r.window).Result()

	logger.Log.Infow("debounce",
		"key", key,
		"window", r.window,
		"acquired", ok,
		"error", err,
	)

	return ok, err
}

// Release clears the window for uid so the next scan launches immediately.
func (r *ScanDebounceRepository) Release(ctx context.Context, uid string) error {
	key := scanKey(uid)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("debounce release",
		"key", key,
		"error", err,
	)

	return err
}
