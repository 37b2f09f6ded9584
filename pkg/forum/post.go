package forum

import (
	"sort"
	"time"

	"ratemypg/pkg/user"
)

type (
	PostId  string
	ReplyId string
)

// Post is a forum entry with its author snapshot, embedded replies and
// the set of user ids that liked it.
type Post struct {
	Id         PostId        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Author     user.Snapshot `json:"author"`
	University string        `json:"university,omitempty"`
	Created    time.Time     `json:"created"`
	Likes      []string      `json:"likes"`
	Replies    []Reply       `json:"replies"`
	Tags       []string      `json:"tags,omitempty"`
}

// Reply is embedded in its parent post. It carries its own id so it
// can be addressed without relying on array positions.
type Reply struct {
	Id      ReplyId       `json:"id"`
	Author  user.Snapshot `json:"author"`
	Content string        `json:"content"`
	Created time.Time     `json:"created"`
	Likes   []string      `json:"likes"`
}

// Normalize fills in defaults for partially written documents: a zero
// timestamp becomes now, nil likes/replies become empty.
func (p *Post) Normalize(now time.Time) {
	if p.Created.IsZero() {
		p.Created = now
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Replies == nil {
		p.Replies = []Reply{}
	}
	for i := range p.Replies {
		r := &p.Replies[i]
		if r.Created.IsZero() {
			r.Created = now
		}
		if r.Likes == nil {
			r.Likes = []string{}
		}
	}
}

// LikedBy reports whether the user already liked the post.
func (p *Post) LikedBy(userId string) bool {
	return containsId(p.Likes, userId)
}

// FindReply returns the embedded reply with the given id.
func (p *Post) FindReply(replyId ReplyId) (*Reply, bool) {
	for i := range p.Replies {
		if p.Replies[i].Id == replyId {
			return &p.Replies[i], true
		}
	}
	return nil, false
}

func (r *Reply) LikedBy(userId string) bool {
	return containsId(r.Likes, userId)
}

func containsId(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// SortPosts orders posts by reply count descending, ties broken by
// creation time descending.
func SortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if len(posts[i].Replies) != len(posts[j].Replies) {
			return len(posts[i].Replies) > len(posts[j].Replies)
		}
		return posts[i].Created.After(posts[j].Created)
	})
}
