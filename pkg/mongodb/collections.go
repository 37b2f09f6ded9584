// Package mongodb wraps the driver's collection types behind small
// interfaces so repositories can be tested with gomock.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ( // Interfaces
	ICollection interface {
		InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (IInsertOneResult, error)
		UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (IUpdateResult, error)
		DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (IDeleteResult, error)
		DeleteMany(context.Context, interface{}, ...*options.DeleteOptions) (IDeleteResult, error)
		FindOne(context.Context, interface{}, ...*options.FindOneOptions) ISingleResult
		Find(context.Context, interface{}, ...*options.FindOptions) (ICursor, error)
	}

	ICursor interface {
		Close(context.Context) error
		All(context.Context, interface{}) error
	}

	ISingleResult     interface{ Decode(interface{}) error }
	IInsertOneResult  interface{}
	IUpdateResult     interface{}
	IDeleteResult     interface{}
)

type ( // Structs
	Collection struct {
		Coll *mongo.Collection
	}

	Cursor struct{ cur *mongo.Cursor }

	SingleResult    struct{ res *mongo.SingleResult }
	InsertOneResult struct{ res *mongo.InsertOneResult }
	UpdateResult    struct{ res *mongo.UpdateResult }
	DeleteResult    struct{ res *mongo.DeleteResult }
)

func Wrap(coll *mongo.Collection) ICollection {
	return &Collection{Coll: coll}
}

// SingleResult

func (sr *SingleResult) Decode(v interface{}) error {
	return sr.res.Decode(v)
}

// Cursor

func (cur *Cursor) Close(ctx context.Context) error {
	return cur.cur.Close(ctx)
}

func (cur *Cursor) All(ctx context.Context, results interface{}) error {
	return cur.cur.All(ctx, results)
}

// Collection

func (col *Collection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (IInsertOneResult, error) {
	insertOneResult, err := col.Coll.InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, err
	}
	return &InsertOneResult{res: insertOneResult}, nil
}

func (col *Collection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (IUpdateResult, error) {
	updateResult, err := col.Coll.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{res: updateResult}, nil
}

func (col *Collection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (IDeleteResult, error) {
	deleteResult, err := col.Coll.DeleteOne(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{res: deleteResult}, nil
}

func (col *Collection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (IDeleteResult, error) {
	deleteResult, err := col.Coll.DeleteMany(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{res: deleteResult}, nil
}

func (col *Collection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) ISingleResult {
	singleResult := col.Coll.FindOne(ctx, filter, opts...)
	return &SingleResult{res: singleResult}
}

func (col *Collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (ICursor, error) {
	cursorResult, err := col.Coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &Cursor{cur: cursorResult}, nil
}
