package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MashookhKhanlol/youtube-clone/internal/database"
	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/middleware"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/auth"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/comment"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/dashboard"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/feed"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/like"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/playlist"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/subscription"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/tweet"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/user"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/video"
	jwtsvc "github.com/MashookhKhanlol/youtube-clone/internal/pkg/jwt"
	"github.com/MashookhKhanlol/youtube-clone/internal/repository"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type testResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fakeStorage stands in for S3 so uploads never leave the process.
type fakeStorage struct{}

func (fakeStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return "https://cdn.test/" + name, nil
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	historyRepo := repository.NewWatchHistoryRepository(db)

	j := jwtsvc.New("test-access", "test-refresh", 15*time.Minute, 24*time.Hour)
	store := fakeStorage{}

	hub := feed.NewHub()
	t.Cleanup(hub.Close)
	notifier := feed.NewNotifier(hub, subscriptionRepo)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j, "test-pepper"), store)
	userHandler := user.NewHandler(user.NewService(userRepo, subscriptionRepo, historyRepo), store)
	videoHandler := video.NewHandler(video.NewService(videoRepo, likeRepo, historyRepo, notifier), store)
	commentHandler := comment.NewHandler(comment.NewService(commentRepo, videoRepo))
	tweetHandler := tweet.NewHandler(tweet.NewService(tweetRepo))
	likeHandler := like.NewHandler(like.NewService(likeRepo, videoRepo, commentRepo, tweetRepo))
	subscriptionHandler := subscription.NewHandler(subscription.NewService(subscriptionRepo, userRepo))
	playlistHandler := playlist.NewHandler(playlist.NewService(playlistRepo, videoRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(videoRepo, likeRepo, subscriptionRepo))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		public := v1.Group("/")
		authHandler.RegisterPublicRoutes(public)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			videoHandler.RegisterProtectedRoutes(protected)
			commentHandler.RegisterProtectedRoutes(protected)
			tweetHandler.RegisterProtectedRoutes(protected)
			likeHandler.RegisterProtectedRoutes(protected)
			subscriptionHandler.RegisterProtectedRoutes(protected)
			playlistHandler.RegisterProtectedRoutes(protected)
			dashboardHandler.RegisterProtectedRoutes(protected)
		}
	}

	return &testSuite{router: r, db: db}
}

func (s *testSuite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var parsed testResponse
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

// register creates a user directly through the JSON register endpoint and
// logs in, returning both session tokens.
func (s *testSuite) register(t *testing.T, username string) (access, refresh string) {
	t.Helper()

	rec, _ := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"full_name": "Test " + username,
		"password":  "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"identifier": username,
		"password":   "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	access, _ = resp.Data["access_token"].(string)
	refresh, _ = resp.Data["refresh_token"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

func (s *testSuite) createVideo(t *testing.T, ownerToken, title string) int64 {
	t.Helper()

	// multipart uploads are exercised in handler code paths; here the video
	// row is created directly so the flow under test stays focused
	var userID int64
	claims, err := jwtsvc.New("test-access", "test-refresh", 15*time.Minute, 24*time.Hour).ValidateAccessToken(ownerToken)
	require.NoError(t, err)
	userID = claims.UserID

	v := &domain.Video{
		OwnerID:     userID,
		Title:       title,
		VideoURL:    "videos/" + title + ".mp4",
		IsPublished: true,
	}
	require.NoError(t, s.db.Create(v).Error)
	return v.ID
}

func TestSessionLifecycle(t *testing.T) {
	s := setupSuite(t)

	access, refresh := s.register(t, "alice")

	// access token opens protected routes
	rec, resp := s.do(t, http.MethodGet, "/api/v1/users/me", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	userData := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "alice", userData["username"])
	assert.NotContains(t, userData, "password_hash")

	// no token, no entry
	rec, _ = s.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// rotation succeeds once
	rec, resp = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	newRefresh := resp.Data["refresh_token"].(string)
	assert.NotEqual(t, refresh, newRefresh)

	// replaying the superseded token is rejected
	rec, resp = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)

	// the fresh token still works
	rec, _ = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": newRefresh})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutKillsRefreshToken(t *testing.T) {
	s := setupSuite(t)

	access, refresh := s.register(t, "alice")

	rec, _ := s.do(t, http.MethodPost, "/api/v1/auth/logout", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	s := setupSuite(t)

	s.register(t, "alice")

	rec, resp := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  "alice",
		"email":     "other@example.com",
		"full_name": "Second Alice",
		"password":  "password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "USER_EXISTS", resp.Error.Code)
}

func TestWrongPasswordVsUnknownUser(t *testing.T) {
	s := setupSuite(t)

	s.register(t, "alice")

	rec, _ := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"identifier": "alice",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"identifier": "ghost",
		"password":   "whatever",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeToggleRoundtrip(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	videoID := s.createVideo(t, aliceToken, "clip")
	path := fmt.Sprintf("/api/v1/likes/video/%d/toggle", videoID)

	rec, resp := s.do(t, http.MethodPost, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp.Data["liked"])
	assert.Equal(t, float64(1), resp.Data["like_count"])

	rec, resp = s.do(t, http.MethodPost, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp.Data["liked"])
	assert.Equal(t, float64(0), resp.Data["like_count"])
}

func TestOwnershipGuardOnVideos(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	bobToken, _ := s.register(t, "bob")
	videoID := s.createVideo(t, aliceToken, "clip")
	path := fmt.Sprintf("/api/v1/videos/%d", videoID)

	// a stranger cannot edit or delete
	rec, resp := s.do(t, http.MethodPatch, path, bobToken, gin.H{"title": "stolen"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	rec, _ = s.do(t, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the owner can
	rec, _ = s.do(t, http.MethodPatch, path, aliceToken, gin.H{"title": "renamed"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the deleted video is gone for everyone
	rec, resp = s.do(t, http.MethodGet, path, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VIDEO_NOT_FOUND", resp.Error.Code)
}

func TestWatchHistoryDedupAndOrder(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	bobToken, _ := s.register(t, "bob")
	first := s.createVideo(t, bobToken, "first")
	second := s.createVideo(t, bobToken, "second")

	// alice watches first, then second, then first again
	for _, id := range []int64{first, second, first} {
		rec, _ := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d", id), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, resp := s.do(t, http.MethodGet, "/api/v1/users/me/history", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	history := resp.Data["history"].([]interface{})
	require.Len(t, history, 2, "re-watching must not duplicate entries")

	top := history[0].(map[string]interface{})["video"].(map[string]interface{})
	assert.Equal(t, "first", top["title"], "most recent watch comes first")
}

func TestViewsCountDistinctUsers(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	bobToken, _ := s.register(t, "bob")
	videoID := s.createVideo(t, aliceToken, "clip")
	path := fmt.Sprintf("/api/v1/videos/%d", videoID)

	// bob watches twice, alice once
	s.do(t, http.MethodGet, path, bobToken, nil)
	s.do(t, http.MethodGet, path, bobToken, nil)
	rec, resp := s.do(t, http.MethodGet, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(2), resp.Data["view_count"])
}

func TestChannelStatsStartAtZero(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")

	rec, resp := s.do(t, http.MethodGet, "/api/v1/dashboard/stats", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := resp.Data["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["total_videos"])
	assert.Equal(t, float64(0), stats["total_views"])
	assert.Equal(t, float64(0), stats["total_subscribers"])
	assert.Equal(t, float64(0), stats["total_likes"])
}

func TestSubscriptionFlow(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	bobToken, _ := s.register(t, "bob")

	// resolve bob's id from his own profile
	rec, resp := s.do(t, http.MethodGet, "/api/v1/users/me", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	bobID := int64(resp.Data["user"].(map[string]interface{})["id"].(float64))

	path := fmt.Sprintf("/api/v1/subscriptions/channel/%d/toggle", bobID)
	rec, resp = s.do(t, http.MethodPost, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp.Data["subscribed"])
	assert.Equal(t, float64(1), resp.Data["subscriber_count"])

	// bob's channel profile reflects the subscription from alice's view
	rec, resp = s.do(t, http.MethodGet, "/api/v1/channels/bob", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	channel := resp.Data["channel"].(map[string]interface{})
	assert.Equal(t, float64(1), channel["subscriber_count"])
	assert.Equal(t, true, channel["is_subscribed"])

	// unsubscribe brings it back to zero
	rec, resp = s.do(t, http.MethodPost, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp.Data["subscribed"])
	assert.Equal(t, float64(0), resp.Data["subscriber_count"])
}

func TestCommentLifecycle(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	bobToken, _ := s.register(t, "bob")
	videoID := s.createVideo(t, aliceToken, "clip")

	rec, resp := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/videos/%d/comments", videoID), bobToken, gin.H{
		"content": "nice video",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	commentID := int64(resp.Data["comment"].(map[string]interface{})["id"].(float64))

	// the video owner cannot edit someone else's comment
	rec, _ = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/comments/%d", commentID), aliceToken, gin.H{
		"content": "edited by stranger",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the author can
	rec, _ = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/comments/%d", commentID), bobToken, gin.H{
		"content": "edited",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d/comments", videoID), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp.Data["total"])
}

func TestPlaylistMembership(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	videoID := s.createVideo(t, aliceToken, "clip")

	rec, resp := s.do(t, http.MethodPost, "/api/v1/playlists", aliceToken, gin.H{"name": "favs"})
	require.Equal(t, http.StatusCreated, rec.Code)
	playlistID := int64(resp.Data["playlist"].(map[string]interface{})["id"].(float64))

	memberPath := fmt.Sprintf("/api/v1/playlists/%d/videos/%d", playlistID, videoID)

	// adding twice is idempotent
	rec, _ = s.do(t, http.MethodPost, memberPath, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = s.do(t, http.MethodPost, memberPath, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/playlists/%d", playlistID), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	videos := resp.Data["playlist"].(map[string]interface{})["videos"].([]interface{})
	assert.Len(t, videos, 1)

	rec, _ = s.do(t, http.MethodDelete, memberPath, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTweetOwnership(t *testing.T) {
	s := setupSuite(t)

	aliceToken, _ := s.register(t, "alice")
	bobToken, _ := s.register(t, "bob")

	rec, resp := s.do(t, http.MethodPost, "/api/v1/tweets", aliceToken, gin.H{"content": "hello world"})
	require.Equal(t, http.StatusCreated, rec.Code)
	tweetID := int64(resp.Data["tweet"].(map[string]interface{})["id"].(float64))

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/tweets/%d", tweetID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/tweets/%d", tweetID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
