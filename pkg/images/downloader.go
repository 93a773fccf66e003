package images

import (
	"context"
	"crypto/md5" //nolint:gosec // short stable hash for key namespacing, not security
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

// fallbackExtension is used when neither content type nor URL give a hint
const fallbackExtension = "bin"

var extensionByType = map[string]string{
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/avif":    "avif",
}

var urlExtRe = regexp.MustCompile(`\.(\w{3,4})([?#]|$)`)

// Downloader fetches a single image and uploads it to the object store
type Downloader struct {
	client  *http.Client
	blob    BlobStore
	timeout time.Duration
}

// NewDownloader creates an image downloader with a per-image timeout
func NewDownloader(blob BlobStore, timeout time.Duration) *Downloader {
	return &Downloader{
		client:  &http.Client{},
		blob:    blob,
		timeout: timeout,
	}
}

// Mirror downloads originalURL and stores it under a key namespaced by feed
// and a short hash of the item guid plus the image's position in the entry.
// Returns the object key on success.
func (d *Downloader) Mirror(ctx context.Context, originalURL, feedID, itemGUID string, index int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, originalURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request for %s: %w", originalURL, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", originalURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("download %s: unexpected status %d", originalURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", originalURL, err)
	}

	contentType := resp.Header.Get("Content-Type")
	key := objectKey(feedID, itemGUID, index, inferExtension(contentType, originalURL))

	if err := d.blob.Put(ctx, key, body, contentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	lgr.Printf("[DEBUG] image mirrored to %s (%d bytes)", key, len(body))
	return key, nil
}

// objectKey builds images/{feed}/{guid-hash}/{index}.{ext}
func objectKey(feedID, itemGUID string, index int, ext string) string {
	sum := md5.Sum([]byte(itemGUID)) //nolint:gosec // namespacing hash
	return fmt.Sprintf("images/%s/%s/%d.%s", feedID, hex.EncodeToString(sum[:])[:8], index, ext)
}

// inferExtension picks the stored extension from the response content type,
// else a dotted suffix in the URL, else a generic fallback
func inferExtension(contentType, rawURL string) string {
	if contentType != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
		if ext, ok := extensionByType[mediaType]; ok {
			return ext
		}
	}
	if m := urlExtRe.FindStringSubmatch(rawURL); m != nil {
		return strings.ToLower(m[1])
	}
	return fallbackExtension
}
