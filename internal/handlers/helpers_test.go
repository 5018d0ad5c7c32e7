package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anik404/memory-lane/backend/internal/middleware"
	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/validators"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// newJSONContext builds an echo context carrying the given JSON body.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// actAs marks the context as authenticated, the way the JWT middleware would.
func actAs(c echo.Context, userID primitive.ObjectID) {
	c.Set(middleware.UserIDKey, userID.Hex())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedUser(t *testing.T, repo *fakeUserRepo, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$fakehashfakehashfakehash",
		Avatar:   models.DefaultAvatar,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func seedPost(t *testing.T, repo *fakePostRepo, author primitive.ObjectID, overrides func(*models.Post)) *models.Post {
	t.Helper()
	post := &models.Post{
		Author:  author,
		Content: "Test nostalgic memory content",
		Image:   "https://example.com/test-image.jpg",
		Tags:    []string{"Games"},
		Decade:  "90s",
	}
	if overrides != nil {
		overrides(post)
	}
	require.NoError(t, repo.CreatePost(context.Background(), post))
	return post
}

// statusOf runs the central error handler on a handler error and reports the
// HTTP status it produced.
func statusOf(t *testing.T, err error) int {
	t.Helper()
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	HTTPErrorHandler(err, c)
	return rec.Code
}

var seedClock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// at returns a strictly increasing timestamp so newest-first ordering in the
// fakes is deterministic.
func at(offset int) time.Time {
	return seedClock.Add(time.Duration(offset) * time.Minute)
}
