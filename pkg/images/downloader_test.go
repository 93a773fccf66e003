package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiofeeds/collector/pkg/images/mocks"
)

func TestDownloader_Mirror(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer ts.Close()

	blob := &mocks.BlobStoreMock{
		PutFunc: func(ctx context.Context, key string, body []byte, contentType string) error { return nil },
	}

	key, err := NewDownloader(blob, time.Second).Mirror(context.Background(), ts.URL+"/pic", "feed-1", "item-guid", 0)
	require.NoError(t, err)
	assert.Equal(t, "images/feed-1/7fa735be/0.png", key, "extension from content type even without a url suffix")

	require.Len(t, blob.PutCalls(), 1)
	assert.Equal(t, key, blob.PutCalls()[0].Key)
	assert.Equal(t, []byte("png-bytes"), blob.PutCalls()[0].Body)
	assert.Equal(t, "image/png", blob.PutCalls()[0].ContentType)
}

func TestDownloader_Mirror_ExtensionFromURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress sniffing, no content type at all
		_, _ = w.Write([]byte{0xde, 0xad})
	}))
	defer ts.Close()

	blob := &mocks.BlobStoreMock{
		PutFunc: func(ctx context.Context, key string, body []byte, contentType string) error { return nil },
	}

	key, err := NewDownloader(blob, time.Second).Mirror(context.Background(), ts.URL+"/img/banner.webp?w=800", "feed-1", "item-guid", 2)
	require.NoError(t, err)
	assert.Equal(t, "images/feed-1/7fa735be/2.webp", key)
}

func TestDownloader_Mirror_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	blob := &mocks.BlobStoreMock{
		PutFunc: func(ctx context.Context, key string, body []byte, contentType string) error { return nil },
	}

	_, err := NewDownloader(blob, time.Second).Mirror(context.Background(), ts.URL+"/gone.jpg", "feed-1", "item-guid", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Empty(t, blob.PutCalls(), "nothing uploaded on download failure")
}

func TestDownloader_Mirror_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	blob := &mocks.BlobStoreMock{
		PutFunc: func(ctx context.Context, key string, body []byte, contentType string) error { return nil },
	}

	_, err := NewDownloader(blob, 20*time.Millisecond).Mirror(context.Background(), ts.URL, "feed-1", "item-guid", 0)
	require.Error(t, err)
}

func TestInferExtension(t *testing.T) {
	tbl := []struct {
		name        string
		contentType string
		url         string
		want        string
	}{
		{"content type wins", "image/jpeg", "http://x/pic.png", "jpg"},
		{"content type with charset", "image/png; charset=binary", "http://x/pic", "png"},
		{"svg", "image/svg+xml", "http://x/pic", "svg"},
		{"avif", "image/avif", "http://x/pic", "avif"},
		{"unknown type falls to url", "application/octet-stream", "http://x/photo.webp", "webp"},
		{"url with query", "", "http://x/photo.jpeg?w=100", "jpeg"},
		{"url with fragment", "", "http://x/photo.gif#top", "gif"},
		{"no hint at all", "", "http://x/photo", "bin"},
		{"too-short suffix ignored", "", "http://x/archive.gz", "bin"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferExtension(tt.contentType, tt.url))
		})
	}
}
