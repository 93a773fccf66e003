package cleanup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiofeeds/collector/pkg/cleanup/mocks"
)

func TestReaper_CleanupExpiredItems(t *testing.T) {
	var order []string

	st := &mocks.ReaperStoreMock{
		GetExpiredItemIDsFunc: func(ctx context.Context, retentionDays int) ([]string, error) {
			assert.Equal(t, 180, retentionDays)
			return []string{"item-1", "item-2"}, nil
		},
		GetObjectKeysForItemsFunc: func(ctx context.Context, itemIDs []string) ([]string, error) {
			return []string{"images/f1/aa/0.jpg", "images/f1/bb/0.png"}, nil
		},
		DeleteItemRecordsFunc: func(ctx context.Context, itemIDs []string) error {
			order = append(order, "metadata")
			return nil
		},
	}
	blob := &mocks.ObjectStoreMock{
		DeleteManyFunc: func(ctx context.Context, keys []string) error {
			order = append(order, "objects")
			return nil
		},
	}

	r := NewReaper(st, blob, 180)
	require.NoError(t, r.CleanupExpiredItems(context.Background()))

	require.Len(t, blob.DeleteManyCalls(), 1)
	assert.Equal(t, []string{"images/f1/aa/0.jpg", "images/f1/bb/0.png"}, blob.DeleteManyCalls()[0].Keys)
	require.Len(t, st.DeleteItemRecordsCalls(), 1)
	assert.Equal(t, []string{"item-1", "item-2"}, st.DeleteItemRecordsCalls()[0].ItemIDs)

	assert.Equal(t, []string{"objects", "metadata"}, order, "objects go strictly before metadata")
}

func TestReaper_CleanupExpiredItems_NoExpired(t *testing.T) {
	st := &mocks.ReaperStoreMock{
		GetExpiredItemIDsFunc: func(ctx context.Context, retentionDays int) ([]string, error) { return nil, nil },
	}
	blob := &mocks.ObjectStoreMock{}

	r := NewReaper(st, blob, 180)
	require.NoError(t, r.CleanupExpiredItems(context.Background()))
	assert.Empty(t, blob.DeleteManyCalls())
	assert.Empty(t, st.DeleteItemRecordsCalls())
}

func TestReaper_CleanupExpiredItems_Batches(t *testing.T) {
	ids := make([]string, 150)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i)
	}

	st := &mocks.ReaperStoreMock{
		GetExpiredItemIDsFunc: func(ctx context.Context, retentionDays int) ([]string, error) { return ids, nil },
		GetObjectKeysForItemsFunc: func(ctx context.Context, itemIDs []string) ([]string, error) {
			return nil, nil // entries without mirrored images
		},
		DeleteItemRecordsFunc: func(ctx context.Context, itemIDs []string) error { return nil },
	}
	blob := &mocks.ObjectStoreMock{}

	r := NewReaper(st, blob, 180)
	require.NoError(t, r.CleanupExpiredItems(context.Background()))

	require.Len(t, st.DeleteItemRecordsCalls(), 2)
	assert.Len(t, st.DeleteItemRecordsCalls()[0].ItemIDs, 100)
	assert.Len(t, st.DeleteItemRecordsCalls()[1].ItemIDs, 50)
	assert.Empty(t, blob.DeleteManyCalls(), "no object delete issued for empty key sets")
}

func TestReaper_CleanupExpiredItems_ObjectDeleteFailureSwallowed(t *testing.T) {
	st := &mocks.ReaperStoreMock{
		GetExpiredItemIDsFunc: func(ctx context.Context, retentionDays int) ([]string, error) {
			return []string{"item-1"}, nil
		},
		GetObjectKeysForItemsFunc: func(ctx context.Context, itemIDs []string) ([]string, error) {
			return []string{"images/f1/aa/0.jpg"}, nil
		},
		DeleteItemRecordsFunc: func(ctx context.Context, itemIDs []string) error { return nil },
	}
	blob := &mocks.ObjectStoreMock{
		DeleteManyFunc: func(ctx context.Context, keys []string) error { return errors.New("bucket unavailable") },
	}

	r := NewReaper(st, blob, 180)
	require.NoError(t, r.CleanupExpiredItems(context.Background()))

	assert.Len(t, st.DeleteItemRecordsCalls(), 1, "metadata removal proceeds past a failed object delete")
}

func TestReaper_CleanupExpiredItems_KeyLookupFailureAbortsBatch(t *testing.T) {
	st := &mocks.ReaperStoreMock{
		GetExpiredItemIDsFunc: func(ctx context.Context, retentionDays int) ([]string, error) {
			return []string{"item-1"}, nil
		},
		GetObjectKeysForItemsFunc: func(ctx context.Context, itemIDs []string) ([]string, error) {
			return nil, errors.New("store down")
		},
	}
	blob := &mocks.ObjectStoreMock{}

	r := NewReaper(st, blob, 180)
	err := r.CleanupExpiredItems(context.Background())
	require.Error(t, err)
	assert.Empty(t, st.DeleteItemRecordsCalls(), "no metadata removed when keys could not be collected")
}

func TestReaper_CleanupDeletedFeeds(t *testing.T) {
	st := &mocks.ReaperStoreMock{
		DeleteMarkedFeedsFunc: func(ctx context.Context) (int, error) { return 2, nil },
	}

	r := NewReaper(st, &mocks.ObjectStoreMock{}, 180)
	require.NoError(t, r.CleanupDeletedFeeds(context.Background()))
	assert.Len(t, st.DeleteMarkedFeedsCalls(), 1)
}

func TestReaper_CleanupDeletedFeeds_Error(t *testing.T) {
	st := &mocks.ReaperStoreMock{
		DeleteMarkedFeedsFunc: func(ctx context.Context) (int, error) { return 0, errors.New("store down") },
	}

	r := NewReaper(st, &mocks.ObjectStoreMock{}, 180)
	require.Error(t, r.CleanupDeletedFeeds(context.Background()))
}

func TestNewReaper_DefaultRetention(t *testing.T) {
	r := NewReaper(&mocks.ReaperStoreMock{}, &mocks.ObjectStoreMock{}, 0)
	assert.Equal(t, 180, r.retentionDays)
}
