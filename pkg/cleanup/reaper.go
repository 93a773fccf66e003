// Package cleanup reclaims expired entries and hard-deletes marked feeds,
// deleting mirrored objects strictly before the metadata that references them.
package cleanup

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/reaper_store.go -pkg mocks -skip-ensure -fmt goimports . ReaperStore
//go:generate moq -out mocks/object_store.go -pkg mocks -skip-ensure -fmt goimports . ObjectStore

// batchSize keeps each metadata delete within the store's batch limits
const batchSize = 100

// ReaperStore is the metadata store surface used during reclamation
type ReaperStore interface {
	GetExpiredItemIDs(ctx context.Context, retentionDays int) ([]string, error)
	GetObjectKeysForItems(ctx context.Context, itemIDs []string) ([]string, error)
	DeleteItemRecords(ctx context.Context, itemIDs []string) error
	DeleteMarkedFeeds(ctx context.Context) (int, error)
}

// ObjectStore deletes mirrored objects in bulk
type ObjectStore interface {
	DeleteMany(ctx context.Context, keys []string) error
}

// Reaper removes entries older than the retention window along with their
// mirrored objects, and sweeps soft-deleted feeds.
type Reaper struct {
	store         ReaperStore
	blob          ObjectStore
	retentionDays int
}

// NewReaper creates a retention reaper
func NewReaper(store ReaperStore, blob ObjectStore, retentionDays int) *Reaper {
	if retentionDays <= 0 {
		retentionDays = 180
	}
	return &Reaper{store: store, blob: blob, retentionDays: retentionDays}
}

// CleanupExpiredItems finds entries past the retention window and reclaims
// them in batches. Within a batch, object deletion is attempted strictly
// before the metadata rows are removed; a failed object delete is logged and
// the metadata still goes — an orphaned object is acceptable, a metadata row
// pointing at a deleted object is not.
func (r *Reaper) CleanupExpiredItems(ctx context.Context) error {
	lgr.Printf("[INFO] starting expired items cleanup, retention %d days", r.retentionDays)

	itemIDs, err := r.store.GetExpiredItemIDs(ctx, r.retentionDays)
	if err != nil {
		return fmt.Errorf("get expired item ids: %w", err)
	}
	if len(itemIDs) == 0 {
		lgr.Printf("[INFO] no expired items to clean up")
		return nil
	}

	lgr.Printf("[INFO] found %d expired items", len(itemIDs))

	for i := 0; i < len(itemIDs); i += batchSize {
		end := min(i+batchSize, len(itemIDs))
		if err := r.reapBatch(ctx, itemIDs[i:end]); err != nil {
			return fmt.Errorf("reap batch at offset %d: %w", i, err)
		}
	}

	lgr.Printf("[INFO] expired items cleanup completed, %d items removed", len(itemIDs))
	return nil
}

// reapBatch reclaims one batch of expired entries
func (r *Reaper) reapBatch(ctx context.Context, itemIDs []string) error {
	keys, err := r.store.GetObjectKeysForItems(ctx, itemIDs)
	if err != nil {
		return fmt.Errorf("get object keys: %w", err)
	}

	if len(keys) > 0 {
		if err := r.blob.DeleteMany(ctx, keys); err != nil {
			// orphaned objects are tolerated, dangling metadata is not
			lgr.Printf("[WARN] failed to delete %d mirrored objects, metadata removal proceeds: %v", len(keys), err)
		}
	}

	if err := r.store.DeleteItemRecords(ctx, itemIDs); err != nil {
		return fmt.Errorf("delete item records: %w", err)
	}

	lgr.Printf("[DEBUG] reaped batch of %d items (%d objects)", len(itemIDs), len(keys))
	return nil
}

// CleanupDeletedFeeds hard-deletes feeds previously soft-deleted; the store
// cascades group memberships and entries before the feed row itself
func (r *Reaper) CleanupDeletedFeeds(ctx context.Context) error {
	count, err := r.store.DeleteMarkedFeeds(ctx)
	if err != nil {
		return fmt.Errorf("delete marked feeds: %w", err)
	}
	if count > 0 {
		lgr.Printf("[INFO] hard-deleted %d marked feeds", count)
	}
	return nil
}
