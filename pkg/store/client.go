// Package store is a typed client for the remote metadata worker. The worker
// speaks a single-endpoint RPC protocol: POST /rpc with an {action, params}
// envelope and a bearer token, answering {data} on success or {error} plus a
// non-2xx status on failure. Every worker action is exposed here as one
// strongly typed method, so a missing or renamed operation fails at compile
// time instead of at dispatch time.
package store

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
)

// Client talks to the metadata worker. All calls fail loudly: a transport
// error, a non-2xx status or an error envelope always surfaces as a Go error,
// never as a zero value.
type Client struct {
	rpcURL     string
	authToken  string
	httpClient *http.Client
}

// New creates a store client for the worker at baseURL
func New(baseURL, authToken string, timeout time.Duration) *Client {
	return &Client{
		rpcURL:     strings.TrimSuffix(baseURL, "/") + "/rpc",
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type rpcRequest struct {
	Action string `json:"action"`
	Params any    `json:"params,omitempty"`
}

// call posts one action envelope and decodes the data payload into T
func call[T any](ctx context.Context, c *Client, action string, params any) (T, error) {
	var envelope struct {
		Data  T      `json:"data"`
		Error string `json:"error"`
	}
	err := requests.URL(c.rpcURL).
		Client(c.httpClient).
		Header("Authorization", "Bearer "+c.authToken).
		BodyJSON(rpcRequest{Action: action, Params: params}).
		ToJSON(&envelope).
		Fetch(ctx)
	if err != nil {
		return envelope.Data, fmt.Errorf("rpc %s: %w", action, err)
	}
	if envelope.Error != "" {
		return envelope.Data, fmt.Errorf("rpc %s: %s", action, envelope.Error)
	}
	return envelope.Data, nil
}

// do posts an action that returns no payload
func (c *Client) do(ctx context.Context, action string, params any) error {
	_, err := call[any](ctx, c, action, params)
	return err
}

// nullable maps the empty string to an absent JSON value, so the worker's
// COALESCE-style updates keep the stored value instead of overwriting it
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListFeedURLs returns the URLs of all non-deleted feeds
func (c *Client) ListFeedURLs(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, c, "listFeedUrls", nil)
}

// InsertFeeds registers new feeds, all due immediately
func (c *Client) InsertFeeds(ctx context.Context, feeds []NewFeed) error {
	if len(feeds) == 0 {
		return nil
	}
	return c.do(ctx, "insertFeeds", map[string]any{"feeds": feeds})
}

// AddFeed registers a single feed and returns the stored row
func (c *Client) AddFeed(ctx context.Context, id, url string, intervalMinutes *int, now time.Time) (*Feed, error) {
	return call[*Feed](ctx, c, "addFeed", map[string]any{
		"id":              id,
		"url":             url,
		"intervalMinutes": intervalMinutes,
		"nextFetchAt":     now,
		"createdAt":       now,
	})
}

// SoftDeleteFeed marks a feed deleted; the reaper removes it later
func (c *Client) SoftDeleteFeed(ctx context.Context, id string, now time.Time) error {
	return c.do(ctx, "softDeleteFeed", map[string]any{"id": id, "now": now})
}

// ListFeeds returns all non-deleted feeds
func (c *Client) ListFeeds(ctx context.Context) ([]Feed, error) {
	return call[[]Feed](ctx, c, "listFeeds", nil)
}

// GetDueFeeds returns feeds whose next fetch time is at or before now
// (or unset), excluding soft-deleted ones
func (c *Client) GetDueFeeds(ctx context.Context, now time.Time) ([]Feed, error) {
	return call[[]Feed](ctx, c, "getDueFeeds", map[string]any{"now": now})
}

// MarkFeedNotModified records a 304 outcome: failure count resets, next
// attempt advances, nothing else changes
func (c *Client) MarkFeedNotModified(ctx context.Context, id string, now, nextFetchAt time.Time) error {
	return c.do(ctx, "markFeedNotModified", map[string]any{
		"id":          id,
		"now":         now,
		"nextFetchAt": nextFetchAt,
	})
}

// MarkFeedSuccess records a successful fetch. Empty title, etag or
// lastModified are sent as null so existing values are preserved.
func (c *Client) MarkFeedSuccess(ctx context.Context, id, title, etag, lastModified string, now, nextFetchAt time.Time) error {
	return c.do(ctx, "markFeedSuccess", map[string]any{
		"id":           id,
		"title":        nullable(title),
		"etag":         nullable(etag),
		"lastModified": nullable(lastModified),
		"now":          now,
		"nextFetchAt":  nextFetchAt,
	})
}

// MarkFeedFailure records a failed attempt with the new cumulative count
func (c *Client) MarkFeedFailure(ctx context.Context, id string, failures int, nextFetchAt time.Time) error {
	return c.do(ctx, "markFeedFailure", map[string]any{
		"id":          id,
		"failures":    failures,
		"nextFetchAt": nextFetchAt,
	})
}

// DeleteMarkedFeeds hard-deletes soft-deleted feeds, cascading through group
// memberships and items store-side. Returns the number of feeds removed.
func (c *Client) DeleteMarkedFeeds(ctx context.Context) (int, error) {
	return call[int](ctx, c, "deleteMarkedFeeds", nil)
}

// InsertItems bulk-inserts entries, idempotent on (feedId, guid)
func (c *Client) InsertItems(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	return c.do(ctx, "insertItems", map[string]any{"items": items})
}

// GetItemFeedInfo resolves an item to its feed id and guid.
// Returns nil without error when the item no longer exists.
func (c *Client) GetItemFeedInfo(ctx context.Context, itemID string) (*ItemFeedInfo, error) {
	return call[*ItemFeedInfo](ctx, c, "getItemFeedInfo", map[string]any{"itemId": itemID})
}

// GetExpiredItemIDs returns ids of items older than the retention window
func (c *Client) GetExpiredItemIDs(ctx context.Context, retentionDays int) ([]string, error) {
	return call[[]string](ctx, c, "getExpiredItemIds", map[string]any{"retentionDays": retentionDays})
}

// InsertImageTasks creates pending tasks, idempotent on (itemId, originalUrl)
func (c *Client) InsertImageTasks(ctx context.Context, tasks []NewImageTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return c.do(ctx, "insertImageTasks", map[string]any{"tasks": tasks})
}

// MarkImageSuccess records a mirrored image with its object key
func (c *Client) MarkImageSuccess(ctx context.Context, itemID, originalURL, objectKey string, now time.Time) error {
	return c.do(ctx, "markImageSuccess", map[string]any{
		"itemId":      itemID,
		"originalUrl": originalURL,
		"objectKey":   objectKey,
		"now":         now,
	})
}

// MarkImageFailure increments attempts and records the error. The worker
// flips status to failed once attempts reaches maxAttempts.
func (c *Client) MarkImageFailure(ctx context.Context, itemID, originalURL, errMsg string, now time.Time, maxAttempts int) error {
	return c.do(ctx, "markImageFailure", map[string]any{
		"itemId":      itemID,
		"originalUrl": originalURL,
		"error":       errMsg,
		"now":         now,
		"maxAttempts": maxAttempts,
	})
}

// GetPendingImageRetries returns tasks attempted at least once but not yet
// exhausted; fresh tasks stay with the initial pipeline run
func (c *Client) GetPendingImageRetries(ctx context.Context, maxAttempts int) ([]PendingImage, error) {
	return call[[]PendingImage](ctx, c, "getPendingImageRetries", map[string]any{"maxAttempts": maxAttempts})
}

// GetImageTaskURLs returns an item's task URLs ordered by creation time
func (c *Client) GetImageTaskURLs(ctx context.Context, itemID string) ([]string, error) {
	return call[[]string](ctx, c, "getImageTaskUrls", map[string]any{"itemId": itemID})
}

// GetObjectKeysForItems returns object keys of successfully mirrored images
// belonging to the given items
func (c *Client) GetObjectKeysForItems(ctx context.Context, itemIDs []string) ([]string, error) {
	return call[[]string](ctx, c, "getObjectKeysForItems", map[string]any{"itemIds": itemIDs})
}

// DeleteItemRecords removes items and their image task rows in one
// transactional batch
func (c *Client) DeleteItemRecords(ctx context.Context, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return c.do(ctx, "deleteItemRecords", map[string]any{"itemIds": itemIDs})
}

// CreateGroup creates a feed group
func (c *Client) CreateGroup(ctx context.Context, id, name string, now time.Time) (*Group, error) {
	return call[*Group](ctx, c, "createGroup", map[string]any{
		"id":        id,
		"name":      name,
		"createdAt": now,
	})
}

// DeleteGroup removes a group and its memberships
func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, "deleteGroup", map[string]any{"id": id})
}

// ListGroups returns all groups with their member feed ids
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	return call[[]Group](ctx, c, "listGroups", nil)
}

// AddFeedToGroup adds a membership, idempotent on (groupId, feedId)
func (c *Client) AddFeedToGroup(ctx context.Context, groupID, feedID string, now time.Time) error {
	return c.do(ctx, "addFeedToGroup", map[string]any{
		"groupId":   groupID,
		"feedId":    feedID,
		"createdAt": now,
	})
}

// RemoveFeedFromGroup drops a membership
func (c *Client) RemoveFeedFromGroup(ctx context.Context, groupID, feedID string) error {
	return c.do(ctx, "removeFeedFromGroup", map[string]any{"groupId": groupID, "feedId": feedID})
}
