package forum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"ratemypg/pkg/sessions"
	"ratemypg/pkg/user"
)

var testUser = &user.User{Id: "u1", Username: "pike", DisplayName: "Pike"}

func authedRequest(method, target, body string, u *user.User) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if u != nil {
		ctx := context.WithValue(r.Context(), sessions.SessionKey, u)
		r = r.WithContext(ctx)
	}
	return r
}

func TestAddPostValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockIPostRepo(ctrl)
	ph := NewPostHandler(mockRepo, nil, nil)

	t.Run("whitespace title is rejected before any store call", func(t *testing.T) {
		w := httptest.NewRecorder()
		ph.Add(w, authedRequest("POST", "/api/posts",
			`{"title": "   ", "content": "something"}`, testUser))

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), "title and content are required")
	})

	t.Run("unauthenticated post is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		ph.Add(w, authedRequest("POST", "/api/posts",
			`{"title": "T", "content": "C"}`, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})
}

func TestAddPostSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockIPostRepo(ctrl)
	feed := NewFeed(mockRepo)
	ph := NewPostHandler(mockRepo, feed, nil)

	var added *Post
	mockRepo.EXPECT().
		Add(gomock.Any(), gomock.AssignableToTypeOf(&Post{})).
		DoAndReturn(func(_ context.Context, p *Post) (PostId, error) {
			added = p
			return p.Id, nil
		})
	// postsChanged refreshes the feed after the write.
	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*Post, error) {
			return []*Post{added}, nil
		})

	w := httptest.NewRecorder()
	ph.Add(w, authedRequest("POST", "/api/posts",
		`{"title": "T", "content": "C"}`, testUser))

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	if assert.NotNil(t, added) {
		assert.Equal(t, "T", added.Title)
		assert.Equal(t, "C", added.Content)
		assert.Equal(t, testUser.Id, added.Author.UserId)
		assert.Equal(t, "Pike", added.Author.DisplayName)
		assert.Len(t, added.Likes, 0)
		assert.Len(t, added.Replies, 0)
		assert.False(t, added.Created.IsZero())
	}

	// The feed now serves the created post.
	posts, err := feed.Posts(context.Background())
	assert.Nil(t, err)
	if assert.Len(t, posts, 1) {
		assert.Equal(t, "T", posts[0].Title)
	}
}

func TestAddReplyRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repo expectations: nothing may be written.
	mockRepo := NewMockIPostRepo(ctrl)
	ph := NewPostHandler(mockRepo, nil, nil)

	r := authedRequest("POST", "/api/post/p1/reply", `{"content": "hi"}`, nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})

	w := httptest.NewRecorder()
	ph.AddReply(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "please sign in first")
}

func TestDeletePostOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockIPostRepo(ctrl)
	ph := NewPostHandler(mockRepo, nil, nil)

	stranger := &user.User{Id: "u2", Username: "mallory"}
	post := &Post{Id: "p1", Author: user.Snapshot{UserId: "u1"}}

	mockRepo.EXPECT().
		GetById(gomock.Any(), PostId("p1")).
		Return(post, nil)

	r := authedRequest("DELETE", "/api/post/p1", ``, stranger)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})

	w := httptest.NewRecorder()
	ph.Delete(w, r)

	assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "only the author can remove the post")
}

func TestLikeRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockIPostRepo(ctrl)
	ph := NewPostHandler(mockRepo, nil, nil)

	r := authedRequest("POST", "/api/post/p1/like", ``, nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})

	w := httptest.NewRecorder()
	ph.Like(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
