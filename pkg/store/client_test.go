package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcRecorder captures the last RPC envelope and plays back canned responses
type rpcRecorder struct {
	lastAction string
	lastParams map[string]any
	lastAuth   string
	respond    func(action string) (status int, body string)
}

func newRPCServer(t *testing.T, rec *rpcRecorder) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rpc", r.URL.Path)

		var req struct {
			Action string         `json:"action"`
			Params map[string]any `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		rec.lastAction = req.Action
		rec.lastParams = req.Params
		rec.lastAuth = r.Header.Get("Authorization")

		status, body := http.StatusOK, `{"data":null}`
		if rec.respond != nil {
			status, body = rec.respond(req.Action)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck
	}))
}

func TestClient_GetDueFeeds(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		return http.StatusOK, `{"data":[
			{"id":"f1","url":"http://a.example.com/rss","last_etag":"\"v1\"","consecutive_failures":2},
			{"id":"f2","url":"http://b.example.com/rss","interval_minutes":15,"consecutive_failures":0}
		]}`
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feeds, err := client.GetDueFeeds(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, "getDueFeeds", rec.lastAction)
	assert.Equal(t, "Bearer secret", rec.lastAuth)
	assert.Equal(t, "2026-03-01T12:00:00Z", rec.lastParams["now"])

	require.Len(t, feeds, 2)
	assert.Equal(t, `"v1"`, feeds[0].LastETag)
	assert.Equal(t, 2, feeds[0].ConsecutiveFailures)
	require.NotNil(t, feeds[1].IntervalMinutes)
	assert.Equal(t, 15, *feeds[1].IntervalMinutes)
}

func TestClient_MarkFeedSuccess_NullableFields(t *testing.T) {
	rec := &rpcRecorder{}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	now := time.Now().UTC()
	err := client.MarkFeedSuccess(context.Background(), "f1", "", `"v2"`, "", now, now.Add(30*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "markFeedSuccess", rec.lastAction)
	// empty strings must be sent as null so the worker keeps stored values
	assert.Nil(t, rec.lastParams["title"])
	assert.Nil(t, rec.lastParams["lastModified"])
	assert.Equal(t, `"v2"`, rec.lastParams["etag"])
}

func TestClient_GetItemFeedInfo_NotFound(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		return http.StatusOK, `{"data":null}`
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	info, err := client.GetItemFeedInfo(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, info, "missing item is nil, not an error")
}

func TestClient_GetItemFeedInfo_Found(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		return http.StatusOK, `{"data":{"feed_id":"f1","guid":"guid-1"}}`
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	info, err := client.GetItemFeedInfo(context.Background(), "i1")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "f1", info.FeedID)
	assert.Equal(t, "guid-1", info.GUID)
}

func TestClient_FailsLoudlyOnHTTPError(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		return http.StatusInternalServerError, `{"error":"boom"}`
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	_, err := client.GetExpiredItemIDs(context.Background(), 180)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getExpiredItemIds")
}

func TestClient_FailsOnErrorEnvelope(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		return http.StatusOK, `{"error":"unknown action"}`
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	err := client.DeleteItemRecords(context.Background(), []string{"i1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestClient_DeleteMarkedFeeds(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		return http.StatusOK, `{"data":3}`
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	count, err := client.DeleteMarkedFeeds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClient_InsertItems_EmptyIsNoop(t *testing.T) {
	rec := &rpcRecorder{respond: func(string) (int, string) {
		t.Fatal("no request expected for empty insert")
		return 0, ""
	}}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	require.NoError(t, client.InsertItems(context.Background(), nil))
	require.NoError(t, client.InsertImageTasks(context.Background(), nil))
	require.NoError(t, client.DeleteItemRecords(context.Background(), nil))
}

func TestClient_InsertImageTasks(t *testing.T) {
	rec := &rpcRecorder{}
	srv := newRPCServer(t, rec)
	defer srv.Close()

	client := New(srv.URL, "secret", 5*time.Second)
	now := time.Now().UTC()
	tasks := []NewImageTask{
		{ID: "t1", ItemID: "i1", OriginalURL: "http://img.example.com/a.png", CreatedAt: now},
		{ID: "t2", ItemID: "i1", OriginalURL: "http://img.example.com/b.png", CreatedAt: now},
	}
	require.NoError(t, client.InsertImageTasks(context.Background(), tasks))

	assert.Equal(t, "insertImageTasks", rec.lastAction)
	sent, ok := rec.lastParams["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, sent, 2)
	first, ok := sent[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://img.example.com/a.png", first["originalUrl"])
}

func TestClient_TimeoutSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"data":null}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "secret", 20*time.Millisecond)
	err := client.SoftDeleteFeed(context.Background(), "f1", time.Now())
	require.Error(t, err)
}
