package review

import (
	"regexp"
	"time"

	"ratemypg/pkg/university"
	"ratemypg/pkg/user"
)

type CommentId string
type ReplyId string

// Comment is a review left on a PG's page.
type Comment struct {
	Id      CommentId       `json:"id"`
	PGId    university.PGId `json:"pgId" bson:"pgId"`
	Author  user.Snapshot   `json:"author"`
	Text    string          `json:"text"`
	Created time.Time       `json:"created"`
}

// Reply is an answer to a comment. Replies live in their own
// collection keyed by the parent comment id and are joined onto
// comments when a PG's thread is read.
type Reply struct {
	Id        ReplyId       `json:"id"`
	CommentId CommentId     `json:"commentId" bson:"commentId"`
	Author    user.Snapshot `json:"author"`
	Text      string        `json:"text"`
	Created   time.Time     `json:"created"`
}

// Thread is a comment with its replies joined, ready for rendering.
type Thread struct {
	Comment  `bson:",inline"`
	Replies  []*Reply `json:"replies"`
	Mentions []string `json:"mentions"`
}

var mentionRe = regexp.MustCompile(`@(\w+)`)

// Mentions extracts the @username tokens from a comment's text, in
// order of appearance, without the @ prefix.
func Mentions(text string) []string {
	mentions := []string{}
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		mentions = append(mentions, m[1])
	}
	return mentions
}
