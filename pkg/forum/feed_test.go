package forum

import (
	"context"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSortPosts(t *testing.T) {
	base := time.Unix(0, 0)
	replies := func(n int) []Reply {
		rs := make([]Reply, n)
		return rs
	}

	a := &Post{Id: "A", Replies: replies(2), Created: base.Add(10 * time.Second)}
	b := &Post{Id: "B", Replies: replies(2), Created: base.Add(20 * time.Second)}
	c := &Post{Id: "C", Replies: replies(5), Created: base.Add(5 * time.Second)}

	posts := []*Post{a, b, c}
	SortPosts(posts)

	got := []PostId{posts[0].Id, posts[1].Id, posts[2].Id}
	assert.Equal(t, []PostId{"C", "B", "A"}, got)
}

func TestNormalizeDefaults(t *testing.T) {
	now := time.Now()
	p := &Post{Id: "1", Title: "T", Content: "C"}
	p.Normalize(now)

	assert.Equal(t, now, p.Created)
	assert.NotNil(t, p.Likes)
	assert.NotNil(t, p.Replies)
	assert.Len(t, p.Likes, 0)
	assert.Len(t, p.Replies, 0)
}

func TestNormalizeReplyDefaults(t *testing.T) {
	now := time.Now()
	p := &Post{Id: "1", Replies: []Reply{{Id: "r1", Content: "hi"}}}
	p.Normalize(now)

	assert.Equal(t, now, p.Replies[0].Created)
	assert.NotNil(t, p.Replies[0].Likes)
}

func TestFeedRefreshesAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	base := time.Unix(0, 0)

	mockRepo := NewMockIPostRepo(ctrl)
	feed := NewFeed(mockRepo)

	first := []*Post{
		{Id: "old", Created: base.Add(time.Second)},
		{Id: "busy", Replies: []Reply{{Id: "r"}}, Created: base},
	}
	mockRepo.EXPECT().GetAll(ctx).Return(first, nil)

	posts, err := feed.Posts(ctx)
	assert.Nil(t, err)
	assert.Equal(t, PostId("busy"), posts[0].Id)
	assert.Equal(t, PostId("old"), posts[1].Id)

	// Without a refresh the cached view is served, no repo call.
	posts, err = feed.Posts(ctx)
	assert.Nil(t, err)
	assert.Len(t, posts, 2)

	// After a refresh the new snapshot replaces the old one.
	second := []*Post{{Id: "only", Created: base}}
	mockRepo.EXPECT().GetAll(ctx).Return(second, nil)
	assert.Nil(t, feed.Refresh(ctx))

	posts, err = feed.Posts(ctx)
	assert.Nil(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, PostId("only"), posts[0].Id)
}
