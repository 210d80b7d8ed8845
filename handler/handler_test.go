package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Vidhub/config"
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/jwt"
	"Vidhub/service"
	"Vidhub/types"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "handler-secret"
	callerID   = "0d8f5b7a-51b4-4c0e-9d73-2b8fc2ab0c01"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type stubLikes struct {
	result *service.ToggleResult
	err    error
	caller string
	target string
}

func (s *stubLikes) toggle(callerID, targetID string) (*service.ToggleResult, error) {
	s.caller, s.target = callerID, targetID
	return s.result, s.err
}

func (s *stubLikes) ToggleVideoLike(_ context.Context, callerID, videoID string) (*service.ToggleResult, error) {
	return s.toggle(callerID, videoID)
}

func (s *stubLikes) ToggleCommentLike(_ context.Context, callerID, commentID string) (*service.ToggleResult, error) {
	return s.toggle(callerID, commentID)
}

func (s *stubLikes) ToggleTweetLike(_ context.Context, callerID, tweetID string) (*service.ToggleResult, error) {
	return s.toggle(callerID, tweetID)
}

func (s *stubLikes) LikedVideos(context.Context, string) ([]*types.LikedVideo, error) {
	return []*types.LikedVideo{}, s.err
}

type stubTweets struct {
	err     error
	updated *types.UpdateTweetRequest
}

func (s *stubTweets) CreateTweet(_ context.Context, ownerID string, req *types.CreateTweetRequest) (*models.Tweet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Tweet{ID: "t1", OwnerID: ownerID, Content: req.Content}, nil
}

func (s *stubTweets) GetTweet(context.Context, string) (*types.TweetItem, error) {
	return nil, s.err
}

func (s *stubTweets) UserTweets(context.Context, string) ([]*types.TweetItem, error) {
	return []*types.TweetItem{}, s.err
}

func (s *stubTweets) UpdateTweet(_ context.Context, tweetID, callerID string, req *types.UpdateTweetRequest) (*models.Tweet, error) {
	s.updated = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Tweet{ID: tweetID, OwnerID: callerID}, nil
}

func (s *stubTweets) DeleteTweet(context.Context, string, string) error {
	return s.err
}

type stubVideos struct {
	service.IVideoService
	videoID string
	req     *types.UpdateVideoRequest
	thumb   string
}

func (s *stubVideos) UpdateVideo(_ context.Context, videoID, callerID string, req *types.UpdateVideoRequest, thumbnailPath string) (*models.Video, error) {
	s.videoID, s.req, s.thumb = videoID, req, thumbnailPath
	return &models.Video{ID: videoID, OwnerID: callerID}, nil
}

func newEngine(routers ...interface{ RegisterRouter(gin.IRouter) }) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	for _, h := range routers {
		h.RegisterRouter(api)
	}
	return r
}

func testConfig() *config.Config {
	return &config.Config{Jwt: &config.Jwt{Secret: testSecret}}
}

func do(t *testing.T, r http.Handler, method, path string, body []byte, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := jwt.GenerateToken([]byte(testSecret), callerID, jwt.TokenTypeAccess, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestLikeHandler_ToggleReply(t *testing.T) {
	likes := &stubLikes{result: &service.ToggleResult{
		Outcome:  service.ToggleCreated,
		Relation: &models.Relation{ID: "r1", ActorID: callerID, Kind: models.TargetVideo, TargetID: "v1"},
	}}
	r := newEngine(&LikeHandler{Config: testConfig(), LikeService: likes})

	w, env := do(t, r, http.MethodPost, "/api/v1/likes/toggle/v/v1", nil, true)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Equal(t, "Video liked successfully", env.Msg)
	assert.Equal(t, callerID, likes.caller)
	assert.Equal(t, "v1", likes.target)

	var data types.ToggleResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "created", data.Outcome)
	require.NotNil(t, data.Relation)
	assert.Equal(t, "r1", data.Relation.ID)

	likes.result = &service.ToggleResult{Outcome: service.ToggleRemoved}
	w, env = do(t, r, http.MethodPost, "/api/v1/likes/toggle/t/t1", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tweet unliked successfully", env.Msg)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "removed", data.Outcome)
}

func TestLikeHandler_RequiresToken(t *testing.T) {
	r := newEngine(&LikeHandler{Config: testConfig(), LikeService: &stubLikes{}})
	w, env := do(t, r, http.MethodPost, "/api/v1/likes/toggle/c/c1", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusUnauthorized, env.Code)
}

func TestErrorKindsMapToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{errno.InvalidArgumentf("invalid video id"), http.StatusBadRequest, "invalid video id"},
		{errno.Forbiddenf("you are not authorized to modify this tweet"), http.StatusForbidden, "you are not authorized to modify this tweet"},
		{errno.NotFoundf("tweet not found"), http.StatusNotFound, "tweet not found"},
		{errors.Wrap(errors.New("connection reset"), "find tweet"), http.StatusInternalServerError, "internal error"},
	}
	for _, c := range cases {
		tweets := &stubTweets{err: c.err}
		r := newEngine(&TweetHandler{Config: testConfig(), TweetService: tweets})

		w, env := do(t, r, http.MethodDelete, "/api/v1/tweets/t1", nil, true)
		assert.Equal(t, c.status, w.Code)
		assert.Equal(t, c.status, env.Code)
		assert.Equal(t, c.msg, env.Msg)
	}
}

func TestTweetHandler(t *testing.T) {
	tweets := &stubTweets{}
	r := newEngine(&TweetHandler{Config: testConfig(), TweetService: tweets})

	w, env := do(t, r, http.MethodPost, "/api/v1/tweets", []byte(`{"content":"hello"}`), true)
	assert.Equal(t, http.StatusCreated, w.Code)
	var tweet models.Tweet
	require.NoError(t, json.Unmarshal(env.Data, &tweet))
	assert.Equal(t, callerID, tweet.OwnerID)
	assert.Equal(t, "hello", tweet.Content)

	w, _ = do(t, r, http.MethodPost, "/api/v1/tweets", []byte(`{"content":`), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 空请求体表示不修改
	w, _ = do(t, r, http.MethodPatch, "/api/v1/tweets/t1", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, tweets.updated)
	assert.Nil(t, tweets.updated.Content)
}

func TestVideoHandler_UpdateAcceptsJSON(t *testing.T) {
	videos := &stubVideos{}
	r := newEngine(&VideoHandler{Config: testConfig(), VideoService: videos})

	w, env := do(t, r, http.MethodPatch, "/api/v1/videos/v1", []byte(`{"title":"new"}`), true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Video updated successfully", env.Msg)
	assert.Equal(t, "v1", videos.videoID)
	require.NotNil(t, videos.req)
	require.NotNil(t, videos.req.Title)
	assert.Equal(t, "new", *videos.req.Title)
	assert.Nil(t, videos.req.Description)
	assert.Empty(t, videos.thumb)

	// 空请求体同样不需要 multipart
	videos.req = nil
	w, _ = do(t, r, http.MethodPatch, "/api/v1/videos/v1", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, videos.req)
	assert.Nil(t, videos.req.Title)
}
