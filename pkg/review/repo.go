package review

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ratemypg/pkg/mongodb"
	"ratemypg/pkg/university"
)

var (
	ErrCommentNotFound = errors.New("review/repo: comment not found")
	ErrReplyNotFound   = errors.New("review/repo: reply not found")
)

type Repo struct {
	comments mongodb.ICollection
	replies  mongodb.ICollection
}

func NewCommentRepo(commentsCol, repliesCol *mongo.Collection) *Repo {
	return &Repo{
		comments: mongodb.Wrap(commentsCol),
		replies:  mongodb.Wrap(repliesCol),
	}
}

// ListByPG returns a PG's comments oldest first, each with its replies
// joined on the read side.
func (r *Repo) ListByPG(ctx context.Context, pgId university.PGId) ([]*Thread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"pgId": pgId}, opts)
	if err != nil {
		return nil, fmt.Errorf("review/repo: failed finding comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []*Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("review/repo: failed getting comments from cursor: %w", err)
	}

	threads := make([]*Thread, 0, len(comments))
	for _, c := range comments {
		replies, err := r.repliesOf(ctx, c.Id)
		if err != nil {
			return nil, err
		}
		threads = append(threads, &Thread{
			Comment:  *c,
			Replies:  replies,
			Mentions: Mentions(c.Text),
		})
	}
	return threads, nil
}

func (r *Repo) repliesOf(ctx context.Context, commentId CommentId) ([]*Reply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}})
	cursor, err := r.replies.Find(ctx, bson.M{"commentId": commentId}, opts)
	if err != nil {
		return nil, fmt.Errorf("review/repo: failed finding replies: %w", err)
	}
	defer cursor.Close(ctx)

	replies := []*Reply{}
	if err := cursor.All(ctx, &replies); err != nil {
		return nil, fmt.Errorf("review/repo: failed getting replies from cursor: %w", err)
	}
	return replies, nil
}

func (r *Repo) GetComment(ctx context.Context, id CommentId) (*Comment, error) {
	c := &Comment{}
	err := r.comments.FindOne(ctx, bson.M{"id": id}).Decode(c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("review/repo: failed getting comment %s: %w", id, err)
	}
	return c, nil
}

func (r *Repo) AddComment(ctx context.Context, c *Comment) (CommentId, error) {
	_, err := r.comments.InsertOne(ctx, c)
	if err != nil {
		return CommentId(``), fmt.Errorf("review/repo: failed inserting a comment: %w", err)
	}
	return c.Id, nil
}

// DeleteComment removes a comment and cascades its replies.
func (r *Repo) DeleteComment(ctx context.Context, id CommentId) error {
	if _, err := r.comments.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("review/repo: failed deleting comment: %w", err)
	}
	if _, err := r.replies.DeleteMany(ctx, bson.M{"commentId": id}); err != nil {
		return fmt.Errorf("review/repo: failed deleting comment replies: %w", err)
	}
	return nil
}

func (r *Repo) GetReply(ctx context.Context, id ReplyId) (*Reply, error) {
	reply := &Reply{}
	err := r.replies.FindOne(ctx, bson.M{"id": id}).Decode(reply)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReplyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("review/repo: failed getting reply %s: %w", id, err)
	}
	return reply, nil
}

func (r *Repo) AddReply(ctx context.Context, reply *Reply) (ReplyId, error) {
	_, err := r.replies.InsertOne(ctx, reply)
	if err != nil {
		return ReplyId(``), fmt.Errorf("review/repo: failed inserting a reply: %w", err)
	}
	return reply.Id, nil
}

func (r *Repo) DeleteReply(ctx context.Context, id ReplyId) error {
	if _, err := r.replies.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("review/repo: failed deleting reply: %w", err)
	}
	return nil
}
