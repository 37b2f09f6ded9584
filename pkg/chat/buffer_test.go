package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"ratemypg/pkg/mongodb"
)

func genMessages(n int) []*Message {
	base := time.Unix(1_600_000_000, 0)
	messages := make([]*Message, n)
	for i := 0; i < n; i++ {
		messages[i] = &Message{
			Id:      MessageId(fmt.Sprintf("m%d", i)),
			Text:    fmt.Sprintf("message %d", i),
			Created: base.Add(time.Duration(i) * time.Second),
		}
	}
	return messages
}

func TestBufferPrunesOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockColl := mongodb.NewMockICollection(ctrl)
	mockCursor := mongodb.NewMockICursor(ctrl)
	mockDeleteResult := mongodb.NewMockIDeleteResult(ctrl)

	repo := &Repo{messages: mockColl}
	buffer := NewBuffer(repo)

	stored := genMessages(105)

	mockColl.EXPECT().
		Find(ctx, gomock.Any(), gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&stored)).
		SetArg(1, stored).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	// Exactly the 5 oldest messages are deleted.
	for i := 0; i < 5; i++ {
		mockColl.EXPECT().
			DeleteOne(ctx, bson.M{"id": MessageId(fmt.Sprintf("m%d", i))}).
			Return(mockDeleteResult, nil)
	}

	visible, err := buffer.Load(ctx)
	assert.Nil(t, err)
	assert.Len(t, visible, 100)
	assert.Equal(t, MessageId("m5"), visible[0].Id)
	assert.Equal(t, MessageId("m104"), visible[99].Id)
}

func TestBufferNoPruneUnderLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockColl := mongodb.NewMockICollection(ctrl)
	mockCursor := mongodb.NewMockICursor(ctrl)

	repo := &Repo{messages: mockColl}
	buffer := NewBuffer(repo)

	stored := genMessages(3)

	mockColl.EXPECT().
		Find(ctx, gomock.Any(), gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&stored)).
		SetArg(1, stored).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	// No DeleteOne expectations: nothing may be pruned.
	visible, err := buffer.Load(ctx)
	assert.Nil(t, err)
	assert.Len(t, visible, 3)
}

func TestBufferPruneSwallowsDeleteErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockColl := mongodb.NewMockICollection(ctrl)
	mockCursor := mongodb.NewMockICursor(ctrl)

	repo := &Repo{messages: mockColl}
	buffer := NewBuffer(repo)

	stored := genMessages(101)

	mockColl.EXPECT().
		Find(ctx, gomock.Any(), gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&stored)).
		SetArg(1, stored).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	// A racing pruner got there first; the failure must not surface.
	mockColl.EXPECT().
		DeleteOne(ctx, gomock.Any()).
		Return(nil, fmt.Errorf("already deleted"))

	visible, err := buffer.Load(ctx)
	assert.Nil(t, err)
	assert.Len(t, visible, 100)
	assert.Equal(t, MessageId("m1"), visible[0].Id)
}
