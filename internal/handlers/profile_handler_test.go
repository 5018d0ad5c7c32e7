package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik404/memory-lane/backend/internal/apperror"
	"github.com/anik404/memory-lane/backend/internal/models"
)

func newProfileHandlerFixture() (*ProfileHandler, *fakeUserRepo, *fakePostRepo, *fakeCommentRepo) {
	users := newFakeUserRepo()
	posts := newFakePostRepo()
	comments := newFakeCommentRepo()
	return NewProfileHandler(users, posts, comments), users, posts, comments
}

func TestGetProfile_NotFound(t *testing.T) {
	h, _, _, _ := newProfileHandlerFixture()

	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodGet, "/users/:username", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	err := h.GetProfile(c)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestGetProfile_PostsLikedPostsAndStats(t *testing.T) {
	h, users, posts, _ := newProfileHandlerFixture()
	owner := seedUser(t, users, "owner")
	other := seedUser(t, users, "other")

	// Two authored posts, one of them liked by someone else
	authored1 := seedPost(t, posts, owner.ID, func(p *models.Post) {
		p.Content = "authored older"
		p.CreatedAt = at(0)
	})
	authored2 := seedPost(t, posts, owner.ID, func(p *models.Post) {
		p.Content = "authored newer"
		p.CreatedAt = at(1)
	})
	require.NoError(t, posts.AddLike(context.Background(), authored1.ID, other.ID))
	require.NoError(t, posts.AddLike(context.Background(), authored2.ID, other.ID))

	// One liked post authored by someone else
	liked := seedPost(t, posts, other.ID, func(p *models.Post) {
		p.Content = "liked by owner"
		p.CreatedAt = at(2)
	})
	require.NoError(t, posts.AddLike(context.Background(), liked.ID, owner.ID))
	require.NoError(t, users.AddLikedPost(context.Background(), owner.ID, liked.ID))

	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/users/:username", "")
	c.SetParamNames("username")
	c.SetParamValues("owner")
	require.NoError(t, h.GetProfile(c))

	resp := decodeBody(t, rec)

	user := resp["user"].(map[string]any)
	assert.Equal(t, "owner", user["username"])
	assert.NotContains(t, user, "password")

	authored := resp["posts"].([]any)
	require.Len(t, authored, 2)
	assert.Equal(t, "authored newer", authored[0].(map[string]any)["content"])
	assert.Equal(t, "authored older", authored[1].(map[string]any)["content"])

	likedList := resp["likedPosts"].([]any)
	require.Len(t, likedList, 1)
	assert.Equal(t, "liked by owner", likedList[0].(map[string]any)["content"])

	stats := resp["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["postsCount"])
	assert.Equal(t, float64(1), stats["likedPostsCount"])
	// One like on each authored post
	assert.Equal(t, float64(2), stats["totalLikes"])
}
