package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"localbuzz-feed-service/internal/delivery/http/handlers"
	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
	comment_mock "localbuzz-feed-service/mocks/comment"
	feed_mock "localbuzz-feed-service/mocks/feed"
	post_mock "localbuzz-feed-service/mocks/post"
	storage_mock "localbuzz-feed-service/mocks/storage"
	user_mock "localbuzz-feed-service/mocks/user"
	vote_mock "localbuzz-feed-service/mocks/vote"
)

type apiMocks struct {
	feed    *feed_mock.Service
	post    *post_mock.Service
	vote    *vote_mock.Service
	comment *comment_mock.Service
	store   *storage_mock.Provider
	users   *user_mock.Client
}

var testUser = &model.User{ID: 42, LocalBody: "Kochi Corporation", Pincode: "682001"}

func setupRouter(t *testing.T) (*gin.Engine, *apiMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &apiMocks{
		feed:    new(feed_mock.Service),
		post:    new(post_mock.Service),
		vote:    new(vote_mock.Service),
		comment: new(comment_mock.Service),
		store:   new(storage_mock.Provider),
		users:   new(user_mock.Client),
	}
	m.users.On("Authenticate", mock.Anything, "valid-token").Return(testUser, nil).Maybe()

	log := logger.New("test")
	handler := handlers.New(m.feed, m.post, m.vote, m.comment, m.store, 30, log)

	router := gin.New()
	handler.RegisterRoutes(router, middleware.Auth(m.users, log))
	return router, m
}

func doRequest(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer valid-token")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
