package images

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/curiofeeds/collector/pkg/store"
)

//go:generate moq -out mocks/task_store.go -pkg mocks -skip-ensure -fmt goimports . TaskStore
//go:generate moq -out mocks/blob_store.go -pkg mocks -skip-ensure -fmt goimports . BlobStore
//go:generate moq -out mocks/mirrorer.go -pkg mocks -skip-ensure -fmt goimports . Mirrorer

// TaskStore is the metadata store surface used by the pipeline
type TaskStore interface {
	InsertImageTasks(ctx context.Context, tasks []store.NewImageTask) error
	MarkImageSuccess(ctx context.Context, itemID, originalURL, objectKey string, now time.Time) error
	MarkImageFailure(ctx context.Context, itemID, originalURL, errMsg string, now time.Time, maxAttempts int) error
	GetPendingImageRetries(ctx context.Context, maxAttempts int) ([]store.PendingImage, error)
	GetImageTaskURLs(ctx context.Context, itemID string) ([]string, error)
	GetItemFeedInfo(ctx context.Context, itemID string) (*store.ItemFeedInfo, error)
}

// BlobStore uploads mirrored image bytes
type BlobStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// Mirrorer downloads one image and stores it, returning the object key
type Mirrorer interface {
	Mirror(ctx context.Context, originalURL, feedID, itemGUID string, index int) (string, error)
}

// Pipeline drives image mirroring for ingested entries and the periodic
// retry sweep over previously failed tasks
type Pipeline struct {
	store       TaskStore
	mirror      Mirrorer
	maxAttempts int
}

// NewPipeline creates an image mirror pipeline
func NewPipeline(taskStore TaskStore, mirror Mirrorer, maxAttempts int) *Pipeline {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &Pipeline{store: taskStore, mirror: mirror, maxAttempts: maxAttempts}
}

// ProcessImages extracts image references from an entry's HTML, records one
// pending task per reference, then mirrors them sequentially. Tasks are
// inserted before any download so partial progress is observable after a
// crash. Per-image failures are recorded on the task, never returned.
func (p *Pipeline) ProcessImages(ctx context.Context, itemID, contentHTML, feedID, itemGUID string) error {
	if contentHTML == "" {
		return nil
	}

	extracted, err := ExtractImageURLs(contentHTML)
	if err != nil {
		return fmt.Errorf("extract images for item %s: %w", itemID, err)
	}
	if len(extracted) == 0 {
		return nil
	}

	now := time.Now().UTC()
	tasks := make([]store.NewImageTask, 0, len(extracted))
	for _, img := range extracted {
		tasks = append(tasks, store.NewImageTask{
			ID:          uuid.NewString(),
			ItemID:      itemID,
			OriginalURL: img.URL,
			CreatedAt:   now,
		})
	}
	if err := p.store.InsertImageTasks(ctx, tasks); err != nil {
		return fmt.Errorf("insert image tasks for item %s: %w", itemID, err)
	}

	for _, img := range extracted {
		p.attempt(ctx, itemID, img.URL, img.Index, feedID, itemGUID)
	}
	return nil
}

// RetryPending re-attempts tasks that failed at least once but have retry
// budget left. Fresh tasks belong to the initial pipeline run, not the sweep.
func (p *Pipeline) RetryPending(ctx context.Context) error {
	tasks, err := p.store.GetPendingImageRetries(ctx, p.maxAttempts)
	if err != nil {
		return fmt.Errorf("get pending image retries: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	lgr.Printf("[INFO] retrying %d pending image tasks", len(tasks))

	for _, task := range tasks {
		info, err := p.store.GetItemFeedInfo(ctx, task.ItemID)
		if err != nil {
			lgr.Printf("[WARN] failed to resolve item %s for image retry: %v", task.ItemID, err)
			continue
		}
		if info == nil {
			// item reaped since the task was created
			continue
		}

		// recompute the positional index from the task list ordered by
		// creation time; out-of-order task creation can drift this from the
		// original extraction index
		urls, err := p.store.GetImageTaskURLs(ctx, task.ItemID)
		if err != nil {
			lgr.Printf("[WARN] failed to list image tasks for item %s: %v", task.ItemID, err)
			continue
		}
		index := slices.Index(urls, task.OriginalURL)
		if index < 0 {
			index = 0
		}

		p.attempt(ctx, task.ItemID, task.OriginalURL, index, info.FeedID, info.GUID)
	}
	return nil
}

// attempt runs one download and records the outcome on the task. Attempt
// accounting and the pending/failed transition happen store-side against
// maxAttempts.
func (p *Pipeline) attempt(ctx context.Context, itemID, originalURL string, index int, feedID, itemGUID string) {
	now := time.Now().UTC()

	key, err := p.mirror.Mirror(ctx, originalURL, feedID, itemGUID, index)
	if err != nil {
		lgr.Printf("[WARN] image download failed for item %s url %s: %v", itemID, originalURL, err)
		if markErr := p.store.MarkImageFailure(ctx, itemID, originalURL, err.Error(), now, p.maxAttempts); markErr != nil {
			lgr.Printf("[WARN] failed to record image failure for item %s: %v", itemID, markErr)
		}
		return
	}

	if markErr := p.store.MarkImageSuccess(ctx, itemID, originalURL, key, now); markErr != nil {
		lgr.Printf("[WARN] failed to record image success for item %s: %v", itemID, markErr)
	}
}
