package chat

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ratemypg/pkg/mongodb"
)

type Repo struct {
	messages mongodb.ICollection
}

func NewMessageRepo(messagesCol *mongo.Collection) *Repo {
	return &Repo{
		messages: mongodb.Wrap(messagesCol),
	}
}

func (r *Repo) Add(ctx context.Context, m *Message) (MessageId, error) {
	_, err := r.messages.InsertOne(ctx, m)
	if err != nil {
		return MessageId(``), fmt.Errorf("chat/repo: failed inserting a message: %w", err)
	}
	return m.Id, nil
}

// ListAsc returns all messages ordered oldest to newest.
func (r *Repo) ListAsc(ctx context.Context) ([]*Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("chat/repo: failed finding messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("chat/repo: failed getting messages from cursor: %w", err)
	}
	return messages, nil
}

// Delete removes one message. Deleting an already-deleted message is
// not an error: concurrent pruners race over the same overflow.
func (r *Repo) Delete(ctx context.Context, id MessageId) error {
	_, err := r.messages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("chat/repo: failed deleting message: %w", err)
	}
	return nil
}
