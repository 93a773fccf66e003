package server

import (
	"crypto/md5" //nolint:gosec // short stable id from the url, not security
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/google/uuid"
)

// feedID derives a stable feed identity from its url, so registering the
// same url twice collides instead of duplicating
func feedID(url string) string {
	sum := md5.Sum([]byte(url)) //nolint:gosec // identity hash
	return hex.EncodeToString(sum[:])[:16]
}

// addFeedHandler registers a new feed, due for fetching immediately
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL             string `json:"url"`
		IntervalMinutes *int   `json:"intervalMinutes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		RenderError(w, r, errors.New("url is required"), http.StatusBadRequest)
		return
	}

	feed, err := s.store.AddFeed(r.Context(), feedID(req.URL), req.URL, req.IntervalMinutes, time.Now().UTC())
	if err != nil {
		lgr.Printf("[WARN] failed to add feed %s: %v", req.URL, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] feed added: %s (%s)", feed.URL, feed.ID)
	RenderJSON(w, r, http.StatusCreated, feed)
}

// listFeedsHandler returns all non-deleted feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.store.ListFeeds(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, feeds)
}

// deleteFeedHandler soft-deletes a feed; its data stays until the reaper
// sweeps marked feeds
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.SoftDeleteFeed(r.Context(), id, time.Now().UTC()); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] feed %s marked for deletion", id)
	RenderJSON(w, r, http.StatusOK, rest.JSON{"status": "ok"})
}

// createGroupHandler creates a feed group
func (s *Server) createGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		RenderError(w, r, errors.New("name is required"), http.StatusBadRequest)
		return
	}

	group, err := s.store.CreateGroup(r.Context(), uuid.NewString(), req.Name, time.Now().UTC())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, group)
}

// listGroupsHandler returns all groups with their member feed ids
func (s *Server) listGroupsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := s.store.ListGroups(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, groups)
}

// deleteGroupHandler removes a group and its memberships
func (s *Server) deleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteGroup(r.Context(), r.PathValue("id")); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"status": "ok"})
}

// addFeedToGroupHandler adds a feed to a group, idempotently
func (s *Server) addFeedToGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeedID string `json:"feedId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.FeedID == "" {
		RenderError(w, r, errors.New("feedId is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.AddFeedToGroup(r.Context(), r.PathValue("groupID"), req.FeedID, time.Now().UTC()); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, rest.JSON{"status": "ok"})
}

// removeFeedFromGroupHandler removes a feed from a group
func (s *Server) removeFeedFromGroupHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveFeedFromGroup(r.Context(), r.PathValue("groupID"), r.PathValue("feedID")); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"status": "ok"})
}
