package chat

import (
	"context"

	"ratemypg/pkg/logger"
)

// RetentionLimit is how many messages the room keeps.
const RetentionLimit = 100

type IMessageRepo interface {
	Add(context.Context, *Message) (MessageId, error)
	ListAsc(context.Context) ([]*Message, error)
	Delete(context.Context, MessageId) error
}

// Buffer bounds the append-only message log to a fixed retention
// window. Pruning happens on the read path: whenever a load observes
// more messages than the limit, the oldest overflow is deleted. No
// dedicated compaction job is needed at this volume.
type Buffer struct {
	repo  IMessageRepo
	limit int
}

func NewBuffer(repo IMessageRepo) *Buffer {
	return &Buffer{
		repo:  repo,
		limit: RetentionLimit,
	}
}

// Load returns the most recent messages, oldest first, after pruning
// any overflow. Prune failures are logged and skipped: another pruner
// may have deleted the same message already, and the view is correct
// either way.
func (b *Buffer) Load(ctx context.Context) ([]*Message, error) {
	messages, err := b.repo.ListAsc(ctx)
	if err != nil {
		return nil, err
	}

	overflow := len(messages) - b.limit
	if overflow <= 0 {
		return messages, nil
	}

	for _, m := range messages[:overflow] {
		if err := b.repo.Delete(ctx, m.Id); err != nil {
			logger.Log(ctx).Errorf("chat/buffer: can't prune message %s: %v", m.Id, err)
		}
	}

	return messages[overflow:], nil
}

// Append stores a new message.
func (b *Buffer) Append(ctx context.Context, m *Message) error {
	_, err := b.repo.Add(ctx, m)
	return err
}
