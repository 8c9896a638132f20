package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusmatch_server/models"
	"campusmatch_server/routes"
	"campusmatch_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := services.NewStoreService(services.NewPersistenceGateway(services.NewMemoryBlobStore()))
	require.NoError(t, store.Load(context.Background()))

	matchService := &services.MatchService{Store: store}
	chatService := &services.ChatService{Store: store}
	notificationService := &services.NotificationService{Store: store}
	catalog, err := services.NewCatalogService("")
	require.NoError(t, err)

	r := mux.NewRouter()
	routes.RegisterActionRoutes(r, matchService)
	routes.RegisterMatchRoutes(r, matchService, catalog)
	routes.RegisterChatRoutes(r, chatService, services.StaticIceBreakerProvider{})
	routes.RegisterNotificationRoutes(r, notificationService)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func swipeRight(t *testing.T, r *mux.Router, candidateID string) {
	t.Helper()
	rec := doJSON(t, r, "POST", "/api/actions/swipe", map[string]interface{}{
		"direction":     "right",
		"currentUserId": "u1",
		"candidate": models.MatchCandidate{
			Profile:         models.Profile{ID: candidateID, AnonymousID: "MidnightScholar", Gender: models.GenderFemale},
			MatchPercentage: 92,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSwipeRightFlow(t *testing.T) {
	r := newTestRouter(t)

	swipeRight(t, r, "c1")

	// Match recorded
	rec := doJSON(t, r, "GET", "/api/matches", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []models.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "c1", matches[0].MatchID)

	// Session exists and is empty
	rec = doJSON(t, r, "GET", "/api/chat/session?matchId=c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var session models.ChatSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "u1", session.UserA)
	assert.Empty(t, session.Messages)

	// Match notification leads the feed
	rec = doJSON(t, r, "GET", "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var feed []models.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.NotEmpty(t, feed)
	assert.Equal(t, models.NotificationTypeMatch, feed[0].Type)
	assert.Contains(t, feed[0].Message, "MidnightScholar")

	// Matched candidate no longer appears in the queue
	rec = doJSON(t, r, "POST", "/api/matches/queue", models.Profile{ID: "u1", Gender: models.GenderMale})
	require.Equal(t, http.StatusOK, rec.Code)
	var queue []models.MatchCandidate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &queue))
	for _, c := range queue {
		assert.NotEqual(t, "c1", c.ID)
	}
}

func TestSwipeLeftRecordsNothing(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/actions/swipe", map[string]interface{}{
		"direction":     "left",
		"currentUserId": "u1",
		"candidate":     models.MatchCandidate{Profile: models.Profile{ID: "c2", Gender: models.GenderFemale}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	matchesRec := doJSON(t, r, "GET", "/api/matches", nil)
	var matches []models.Match
	require.NoError(t, json.Unmarshal(matchesRec.Body.Bytes(), &matches))
	assert.Empty(t, matches)
}

func TestSwipeValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/actions/swipe", map[string]interface{}{
		"direction":     "up",
		"currentUserId": "u1",
		"candidate":     models.MatchCandidate{Profile: models.Profile{ID: "c1"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Over-long interest list is rejected before any state change
	rec = doJSON(t, r, "POST", "/api/actions/swipe", map[string]interface{}{
		"direction":     "right",
		"currentUserId": "u1",
		"candidate": models.MatchCandidate{Profile: models.Profile{
			ID:        "c1",
			Interests: []string{"a", "b", "c", "d", "e", "f"},
		}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	matchesRec := doJSON(t, r, "GET", "/api/matches", nil)
	var matches []models.Match
	require.NoError(t, json.Unmarshal(matchesRec.Body.Bytes(), &matches))
	assert.Empty(t, matches)
}

func TestSendMessageFlow(t *testing.T) {
	r := newTestRouter(t)
	swipeRight(t, r, "c1")

	rec := doJSON(t, r, "POST", "/api/chat/message", map[string]interface{}{
		"matchId":  "c1",
		"senderId": "u1",
		"text":     "hi",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	sessionRec := doJSON(t, r, "GET", "/api/chat/session?matchId=c1", nil)
	var session models.ChatSession
	require.NoError(t, json.Unmarshal(sessionRec.Body.Bytes(), &session))
	require.Len(t, session.Messages, 1)
	assert.Equal(t, "hi", session.Messages[0].Text)

	// Missing session is a 404, not a silent drop
	rec = doJSON(t, r, "POST", "/api/chat/message", map[string]interface{}{
		"matchId":  "c99",
		"senderId": "u1",
		"text":     "anyone there?",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Empty text is a 400
	rec = doJSON(t, r, "POST", "/api/chat/message", map[string]interface{}{
		"matchId":  "c1",
		"senderId": "u1",
		"text":     "  ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate IDs are a 409
	for i, want := range []int{http.StatusOK, http.StatusConflict} {
		rec = doJSON(t, r, "POST", "/api/chat/message", map[string]interface{}{
			"matchId":  "c1",
			"id":       "m-dup",
			"senderId": "u1",
			"text":     fmt.Sprintf("attempt %d", i),
		})
		assert.Equal(t, want, rec.Code)
	}
}

func TestUnmatchRemovesSession(t *testing.T) {
	r := newTestRouter(t)
	swipeRight(t, r, "c1")

	rec := doJSON(t, r, "DELETE", "/api/matches/c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/chat/session?matchId=c1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkNotificationsRead(t *testing.T) {
	r := newTestRouter(t)
	swipeRight(t, r, "c1")

	rec := doJSON(t, r, "POST", "/api/notifications/mark-read", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	feedRec := doJSON(t, r, "GET", "/api/notifications", nil)
	var feed []models.Notification
	require.NoError(t, json.Unmarshal(feedRec.Body.Bytes(), &feed))
	require.NotEmpty(t, feed)
	for _, n := range feed {
		assert.True(t, n.Read)
	}
}

func TestIceBreakerEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/chat/icebreaker", map[string]interface{}{
		"user": models.Profile{ID: "u1"},
		"candidate": models.MatchCandidate{
			Profile: models.Profile{ID: "c1", Interests: []string{"indie music"}},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response["opener"])
}

func TestResetEndpoint(t *testing.T) {
	r := newTestRouter(t)
	swipeRight(t, r, "c1")

	rec := doJSON(t, r, "POST", "/api/actions/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	matchesRec := doJSON(t, r, "GET", "/api/matches", nil)
	var matches []models.Match
	require.NoError(t, json.Unmarshal(matchesRec.Body.Bytes(), &matches))
	assert.Empty(t, matches)
}
