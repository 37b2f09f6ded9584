package forum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ratemypg/pkg/mongodb"
)

var (
	ErrPostNotFound  = errors.New("forum/repo: post not found")
	ErrReplyNotFound = errors.New("forum/repo: reply not found")
)

type Repo struct {
	posts mongodb.ICollection
}

func NewPostRepo(postsCol *mongo.Collection) *Repo {
	return &Repo{
		posts: mongodb.Wrap(postsCol),
	}
}

func (r *Repo) Add(ctx context.Context, p *Post) (PostId, error) {
	_, err := r.posts.InsertOne(ctx, p)
	if err != nil {
		return PostId(``), fmt.Errorf("forum/repo: failed inserting a post: %w", err)
	}
	return p.Id, nil
}

func (r *Repo) GetById(ctx context.Context, id PostId) (*Post, error) {
	post := new(Post)
	err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("forum/repo: failed loading post: %w", err)
	}
	post.Normalize(time.Now())
	return post, nil
}

func (r *Repo) GetAll(ctx context.Context) ([]*Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *Repo) GetByUniversity(ctx context.Context, university string) ([]*Post, error) {
	return r.find(ctx, bson.M{"university": university})
}

func (r *Repo) find(ctx context.Context, filter bson.M) ([]*Post, error) {
	cursor, err := r.posts.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("forum/repo: failed finding posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("forum/repo: failed getting posts from cursor: %w", err)
	}

	now := time.Now()
	for _, p := range posts {
		p.Normalize(now)
	}
	return posts, nil
}

func (r *Repo) Delete(ctx context.Context, id PostId) error {
	_, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("forum/repo: failed deleting post: %w", err)
	}
	return nil
}

// ToggleLike adds the user to the post's likes set, or removes it when
// already present. The write is a field-level $addToSet/$pull, so
// concurrent likers can't overwrite each other and a user id can never
// appear twice. Returns whether the post ends up liked. The in-memory
// copy is updated to match.
func (r *Repo) ToggleLike(ctx context.Context, post *Post, userId string) (bool, error) {
	liked := !post.LikedBy(userId)

	var update bson.M
	if liked {
		update = bson.M{"$addToSet": bson.M{"likes": userId}}
	} else {
		update = bson.M{"$pull": bson.M{"likes": userId}}
	}

	if _, err := r.posts.UpdateOne(ctx, bson.M{"id": post.Id}, update); err != nil {
		return false, fmt.Errorf("forum/repo: failed toggling like: %w", err)
	}

	post.Likes = toggleId(post.Likes, userId, liked)
	return liked, nil
}

// ToggleReplyLike does the same for one embedded reply, addressed by
// its id through the positional operator.
func (r *Repo) ToggleReplyLike(ctx context.Context, post *Post, replyId ReplyId, userId string) (bool, error) {
	reply, ok := post.FindReply(replyId)
	if !ok {
		return false, ErrReplyNotFound
	}
	liked := !reply.LikedBy(userId)

	filter := bson.M{"id": post.Id, "replies.id": replyId}
	var update bson.M
	if liked {
		update = bson.M{"$addToSet": bson.M{"replies.$.likes": userId}}
	} else {
		update = bson.M{"$pull": bson.M{"replies.$.likes": userId}}
	}

	if _, err := r.posts.UpdateOne(ctx, filter, update); err != nil {
		return false, fmt.Errorf("forum/repo: failed toggling reply like: %w", err)
	}

	reply.Likes = toggleId(reply.Likes, userId, liked)
	return liked, nil
}

func (r *Repo) AddReply(ctx context.Context, postId PostId, reply *Reply) error {
	filter := bson.D{{Key: "id", Value: postId}}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "replies", Value: reply}}}}
	if _, err := r.posts.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("forum/repo: failed adding reply: %w", err)
	}
	return nil
}

// DeleteReply removes the reply by id, not by array index, so a
// concurrent append can't shift the target.
func (r *Repo) DeleteReply(ctx context.Context, postId PostId, replyId ReplyId) error {
	filter := bson.D{{Key: "id", Value: postId}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "replies", Value: bson.D{{Key: "id", Value: replyId}}}}}}
	if _, err := r.posts.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("forum/repo: failed deleting reply: %w", err)
	}
	return nil
}

func toggleId(ids []string, id string, present bool) []string {
	if present {
		if containsId(ids, id) {
			return ids
		}
		return append(ids, id)
	}
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
