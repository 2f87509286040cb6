package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const alertCooldown = 24 * time.Hour

// AlertDeduper suppresses repeat low-stock alerts backed by Redis.
// Key format: lowstock:<tenant_id>:<product_id>
//
// A product whose quantity oscillates around the threshold would
// otherwise email the tenant on every update; one alert per product per
// cooldown window is enough.
type AlertDeduper struct {
	client *redis.Client
}

// NewAlertDeduper creates an AlertDeduper wrapping the given Redis client.
func NewAlertDeduper(client *redis.Client) *AlertDeduper {
	return &AlertDeduper{client: client}
}

// IsDuplicate reports whether an alert for this product was already sent
// inside the cooldown window.
func (d *AlertDeduper) IsDuplicate(ctx context.Context, tenantID, productID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tenantID, productID)).Result()
	if err != nil {
		return false, fmt.Errorf("alert dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that an alert for this product went out (expires after the
// cooldown window).
func (d *AlertDeduper) Mark(ctx context.Context, tenantID, productID string) error {
	return d.client.Set(ctx, d.key(tenantID, productID), "1", alertCooldown).Err()
}

func (d *AlertDeduper) key(tenantID, productID string) string {
	return fmt.Sprintf("lowstock:%s:%s", tenantID, productID)
}
