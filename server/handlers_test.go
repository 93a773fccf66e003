package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiofeeds/collector/pkg/store"
	"github.com/curiofeeds/collector/server/mocks"
)

func startTestServer(t *testing.T, st Store) *httptest.Server {
	t.Helper()
	srv := New(Config{Listen: ":8080", Timeout: 30 * time.Second}, st, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestFeedID(t *testing.T) {
	assert.Equal(t, "f7880620c8c1d31d", feedID("https://example.com/feed.xml"))
	assert.Equal(t, "d119eb2ea3068cb2", feedID("https://blog.example.org/rss"))
	// stable across calls
	assert.Equal(t, feedID("https://example.com/feed.xml"), feedID("https://example.com/feed.xml"))
}

func TestServer_addFeedHandler(t *testing.T) {
	st := &mocks.StoreMock{
		AddFeedFunc: func(ctx context.Context, id, url string, intervalMinutes *int, now time.Time) (*store.Feed, error) {
			return &store.Feed{ID: id, URL: url, IntervalMinutes: intervalMinutes, NextFetchAt: &now, CreatedAt: &now}, nil
		},
	}
	ts := startTestServer(t, st)

	resp, err := http.Post(ts.URL+"/api/feeds", "application/json",
		strings.NewReader(`{"url": "https://example.com/feed.xml", "intervalMinutes": 120}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var feed store.Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Equal(t, "f7880620c8c1d31d", feed.ID, "id is derived from the url")
	assert.Equal(t, "https://example.com/feed.xml", feed.URL)

	require.Len(t, st.AddFeedCalls(), 1)
	call := st.AddFeedCalls()[0]
	assert.Equal(t, "f7880620c8c1d31d", call.ID)
	require.NotNil(t, call.IntervalMinutes)
	assert.Equal(t, 120, *call.IntervalMinutes)
}

func TestServer_addFeedHandler_Errors(t *testing.T) {
	tbl := []struct {
		name string
		body string
		code int
	}{
		{"missing url", `{"intervalMinutes": 60}`, http.StatusBadRequest},
		{"bad json", `{not json`, http.StatusBadRequest},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			st := &mocks.StoreMock{}
			ts := startTestServer(t, st)

			resp, err := http.Post(ts.URL+"/api/feeds", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Empty(t, st.AddFeedCalls())
		})
	}
}

func TestServer_addFeedHandler_StoreError(t *testing.T) {
	st := &mocks.StoreMock{
		AddFeedFunc: func(ctx context.Context, id, url string, intervalMinutes *int, now time.Time) (*store.Feed, error) {
			return nil, assert.AnError
		},
	}
	ts := startTestServer(t, st)

	resp, err := http.Post(ts.URL+"/api/feeds", "application/json",
		strings.NewReader(`{"url": "https://example.com/feed.xml"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_listFeedsHandler(t *testing.T) {
	st := &mocks.StoreMock{
		ListFeedsFunc: func(ctx context.Context) ([]store.Feed, error) {
			return []store.Feed{
				{ID: "f1", URL: "https://example.com/feed.xml"},
				{ID: "f2", URL: "https://blog.example.org/rss"},
			}, nil
		},
	}
	ts := startTestServer(t, st)

	resp, err := http.Get(ts.URL + "/api/feeds")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var feeds []store.Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feeds))
	require.Len(t, feeds, 2)
	assert.Equal(t, "f1", feeds[0].ID)
}

func TestServer_deleteFeedHandler(t *testing.T) {
	st := &mocks.StoreMock{
		SoftDeleteFeedFunc: func(ctx context.Context, id string, now time.Time) error { return nil },
	}
	ts := startTestServer(t, st)

	req, err := http.NewRequest("DELETE", ts.URL+"/api/feeds/f7880620c8c1d31d", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, st.SoftDeleteFeedCalls(), 1)
	assert.Equal(t, "f7880620c8c1d31d", st.SoftDeleteFeedCalls()[0].ID)
}

func TestServer_createGroupHandler(t *testing.T) {
	st := &mocks.StoreMock{
		CreateGroupFunc: func(ctx context.Context, id, name string, now time.Time) (*store.Group, error) {
			return &store.Group{ID: id, Name: name, CreatedAt: &now}, nil
		},
	}
	ts := startTestServer(t, st)

	resp, err := http.Post(ts.URL+"/api/groups", "application/json", strings.NewReader(`{"name": "tech"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var group store.Group
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&group))
	assert.Equal(t, "tech", group.Name)
	assert.NotEmpty(t, group.ID)
}

func TestServer_createGroupHandler_MissingName(t *testing.T) {
	st := &mocks.StoreMock{}
	ts := startTestServer(t, st)

	resp, err := http.Post(ts.URL+"/api/groups", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, st.CreateGroupCalls())
}

func TestServer_listGroupsHandler(t *testing.T) {
	st := &mocks.StoreMock{
		ListGroupsFunc: func(ctx context.Context) ([]store.Group, error) {
			return []store.Group{{ID: "g1", Name: "tech", FeedIDs: []string{"f1", "f2"}}}, nil
		},
	}
	ts := startTestServer(t, st)

	resp, err := http.Get(ts.URL + "/api/groups")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var groups []store.Group
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&groups))
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"f1", "f2"}, groups[0].FeedIDs)
}

func TestServer_deleteGroupHandler(t *testing.T) {
	st := &mocks.StoreMock{
		DeleteGroupFunc: func(ctx context.Context, id string) error { return nil },
	}
	ts := startTestServer(t, st)

	req, err := http.NewRequest("DELETE", ts.URL+"/api/groups/g1", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, st.DeleteGroupCalls(), 1)
	assert.Equal(t, "g1", st.DeleteGroupCalls()[0].ID)
}

func TestServer_addFeedToGroupHandler(t *testing.T) {
	st := &mocks.StoreMock{
		AddFeedToGroupFunc: func(ctx context.Context, groupID, feedID string, now time.Time) error { return nil },
	}
	ts := startTestServer(t, st)

	resp, err := http.Post(ts.URL+"/api/groups/g1/feeds", "application/json",
		strings.NewReader(`{"feedId": "f7880620c8c1d31d"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, st.AddFeedToGroupCalls(), 1)
	call := st.AddFeedToGroupCalls()[0]
	assert.Equal(t, "g1", call.GroupID)
	assert.Equal(t, "f7880620c8c1d31d", call.FeedID)
}

func TestServer_addFeedToGroupHandler_MissingFeedID(t *testing.T) {
	st := &mocks.StoreMock{}
	ts := startTestServer(t, st)

	resp, err := http.Post(ts.URL+"/api/groups/g1/feeds", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, st.AddFeedToGroupCalls())
}

func TestServer_removeFeedFromGroupHandler(t *testing.T) {
	st := &mocks.StoreMock{
		RemoveFeedFromGroupFunc: func(ctx context.Context, groupID, feedID string) error { return nil },
	}
	ts := startTestServer(t, st)

	req, err := http.NewRequest("DELETE", ts.URL+"/api/groups/g1/feeds/f1", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, st.RemoveFeedFromGroupCalls(), 1)
	call := st.RemoveFeedFromGroupCalls()[0]
	assert.Equal(t, "g1", call.GroupID)
	assert.Equal(t, "f1", call.FeedID)
}
