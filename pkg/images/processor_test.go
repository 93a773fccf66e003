package images

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiofeeds/collector/pkg/images/mocks"
	"github.com/curiofeeds/collector/pkg/store"
)

func TestPipeline_ProcessImages(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{
		InsertImageTasksFunc: func(ctx context.Context, tasks []store.NewImageTask) error { return nil },
		MarkImageSuccessFunc: func(ctx context.Context, itemID, originalURL, objectKey string, now time.Time) error {
			return nil
		},
	}
	mirror := &mocks.MirrorerMock{
		MirrorFunc: func(ctx context.Context, originalURL, feedID, itemGUID string, index int) (string, error) {
			return "images/feed-1/deadbeef/0.jpg", nil
		},
	}

	html := `<img src="https://cdn.example.com/a.jpg"><img src="/rel.png">`
	p := NewPipeline(taskStore, mirror, 3)
	err := p.ProcessImages(context.Background(), "item-1", html, "feed-1", "guid-1")
	require.NoError(t, err)

	// one task per qualifying reference, recorded before any download
	require.Len(t, taskStore.InsertImageTasksCalls(), 1)
	tasks := taskStore.InsertImageTasksCalls()[0].Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "item-1", tasks[0].ItemID)
	assert.Equal(t, "https://cdn.example.com/a.jpg", tasks[0].OriginalURL)
	assert.NotEmpty(t, tasks[0].ID)

	require.Len(t, mirror.MirrorCalls(), 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", mirror.MirrorCalls()[0].OriginalURL)
	assert.Equal(t, "feed-1", mirror.MirrorCalls()[0].FeedID)
	assert.Equal(t, "guid-1", mirror.MirrorCalls()[0].ItemGUID)

	require.Len(t, taskStore.MarkImageSuccessCalls(), 1)
	assert.Equal(t, "images/feed-1/deadbeef/0.jpg", taskStore.MarkImageSuccessCalls()[0].ObjectKey)
}

func TestPipeline_ProcessImages_EmptyContent(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{}
	mirror := &mocks.MirrorerMock{}

	p := NewPipeline(taskStore, mirror, 3)
	require.NoError(t, p.ProcessImages(context.Background(), "item-1", "", "feed-1", "guid-1"))
	require.NoError(t, p.ProcessImages(context.Background(), "item-1", "<p>no images</p>", "feed-1", "guid-1"))

	assert.Empty(t, taskStore.InsertImageTasksCalls())
	assert.Empty(t, mirror.MirrorCalls())
}

func TestPipeline_ProcessImages_DownloadFailureRecorded(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{
		InsertImageTasksFunc: func(ctx context.Context, tasks []store.NewImageTask) error { return nil },
		MarkImageFailureFunc: func(ctx context.Context, itemID, originalURL, errMsg string, now time.Time, maxAttempts int) error {
			return nil
		},
	}
	mirror := &mocks.MirrorerMock{
		MirrorFunc: func(ctx context.Context, originalURL, feedID, itemGUID string, index int) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	p := NewPipeline(taskStore, mirror, 3)
	err := p.ProcessImages(context.Background(), "item-1", `<img src="https://x/a.jpg">`, "feed-1", "guid-1")
	require.NoError(t, err, "per-image failures never fail the pipeline")

	require.Len(t, taskStore.MarkImageFailureCalls(), 1)
	call := taskStore.MarkImageFailureCalls()[0]
	assert.Equal(t, "item-1", call.ItemID)
	assert.Equal(t, "https://x/a.jpg", call.OriginalURL)
	assert.Equal(t, "connection refused", call.ErrMsg)
	assert.Equal(t, 3, call.MaxAttempts)
}

func TestPipeline_ProcessImages_InsertError(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{
		InsertImageTasksFunc: func(ctx context.Context, tasks []store.NewImageTask) error {
			return errors.New("store down")
		},
	}
	mirror := &mocks.MirrorerMock{}

	p := NewPipeline(taskStore, mirror, 3)
	err := p.ProcessImages(context.Background(), "item-1", `<img src="https://x/a.jpg">`, "feed-1", "guid-1")
	require.Error(t, err)
	assert.Empty(t, mirror.MirrorCalls(), "no downloads without recorded tasks")
}

func TestPipeline_RetryPending(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{
		GetPendingImageRetriesFunc: func(ctx context.Context, maxAttempts int) ([]store.PendingImage, error) {
			assert.Equal(t, 3, maxAttempts)
			return []store.PendingImage{
				{ID: "t1", ItemID: "item-1", OriginalURL: "https://x/b.png"},
				{ID: "t2", ItemID: "item-gone", OriginalURL: "https://x/c.png"},
			}, nil
		},
		GetItemFeedInfoFunc: func(ctx context.Context, itemID string) (*store.ItemFeedInfo, error) {
			if itemID == "item-gone" {
				return nil, nil // item reaped since the task was created
			}
			return &store.ItemFeedInfo{FeedID: "feed-1", GUID: "guid-1"}, nil
		},
		GetImageTaskURLsFunc: func(ctx context.Context, itemID string) ([]string, error) {
			return []string{"https://x/a.jpg", "https://x/b.png"}, nil
		},
		MarkImageSuccessFunc: func(ctx context.Context, itemID, originalURL, objectKey string, now time.Time) error {
			return nil
		},
	}
	mirror := &mocks.MirrorerMock{
		MirrorFunc: func(ctx context.Context, originalURL, feedID, itemGUID string, index int) (string, error) {
			return "images/feed-1/deadbeef/1.png", nil
		},
	}

	p := NewPipeline(taskStore, mirror, 3)
	require.NoError(t, p.RetryPending(context.Background()))

	require.Len(t, mirror.MirrorCalls(), 1, "reaped item is skipped")
	call := mirror.MirrorCalls()[0]
	assert.Equal(t, "https://x/b.png", call.OriginalURL)
	assert.Equal(t, 1, call.Index, "index recomputed from the task list order")
	assert.Equal(t, "feed-1", call.FeedID)
	assert.Equal(t, "guid-1", call.ItemGUID)

	require.Len(t, taskStore.MarkImageSuccessCalls(), 1)
}

func TestPipeline_RetryPending_Empty(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{
		GetPendingImageRetriesFunc: func(ctx context.Context, maxAttempts int) ([]store.PendingImage, error) {
			return nil, nil
		},
	}
	p := NewPipeline(taskStore, &mocks.MirrorerMock{}, 3)
	require.NoError(t, p.RetryPending(context.Background()))
}

func TestPipeline_RetryPending_UnknownURLFallsBackToZero(t *testing.T) {
	taskStore := &mocks.TaskStoreMock{
		GetPendingImageRetriesFunc: func(ctx context.Context, maxAttempts int) ([]store.PendingImage, error) {
			return []store.PendingImage{{ID: "t1", ItemID: "item-1", OriginalURL: "https://x/missing.png"}}, nil
		},
		GetItemFeedInfoFunc: func(ctx context.Context, itemID string) (*store.ItemFeedInfo, error) {
			return &store.ItemFeedInfo{FeedID: "feed-1", GUID: "guid-1"}, nil
		},
		GetImageTaskURLsFunc: func(ctx context.Context, itemID string) ([]string, error) {
			return []string{"https://x/other.png"}, nil
		},
		MarkImageFailureFunc: func(ctx context.Context, itemID, originalURL, errMsg string, now time.Time, maxAttempts int) error {
			return nil
		},
	}
	mirror := &mocks.MirrorerMock{
		MirrorFunc: func(ctx context.Context, originalURL, feedID, itemGUID string, index int) (string, error) {
			return "", errors.New("still down")
		},
	}

	p := NewPipeline(taskStore, mirror, 3)
	require.NoError(t, p.RetryPending(context.Background()))

	require.Len(t, mirror.MirrorCalls(), 1)
	assert.Equal(t, 0, mirror.MirrorCalls()[0].Index)
	require.Len(t, taskStore.MarkImageFailureCalls(), 1)
}
