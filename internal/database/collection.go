package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection exposes the five primitives every repository is built from.
type Collection struct {
	coll *mongo.Collection
}

func NewCollection(coll *mongo.Collection) Collection {
	return Collection{coll: coll}
}

type FindOptions struct {
	Sort       bson.D
	Limit      int64
	Projection bson.D
}

// FindMany decodes every match into results, which must point to a slice.
// Pass an initialised empty slice to get [] rather than null for no matches.
func (c Collection) FindMany(ctx context.Context, filter interface{}, opts FindOptions, results interface{}) error {
	fo := options.Find()
	if len(opts.Sort) > 0 {
		fo.SetSort(opts.Sort)
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	if len(opts.Projection) > 0 {
		fo.SetProjection(opts.Projection)
	}

	cur, err := c.coll.Find(ctx, filter, fo)
	if err != nil {
		return fmt.Errorf("find in %s: %w", c.coll.Name(), err)
	}

	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c Collection) FindOne(ctx context.Context, filter interface{}, result interface{}) error {
	err := c.coll.FindOne(ctx, filter).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("find one in %s: %w", c.coll.Name(), ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c Collection) InsertOne(ctx context.Context, doc interface{}) (InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return InsertResult{}, wrapWriteError("insert into", c.coll.Name(), err)
	}
	return newInsertResult(res), nil
}

func (c Collection) UpdateOne(ctx context.Context, filter, update interface{}) (UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return UpdateResult{}, wrapWriteError("update in", c.coll.Name(), err)
	}
	return newUpdateResult(res), nil
}

func (c Collection) DeleteOne(ctx context.Context, filter interface{}) (DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete from %s: %w", c.coll.Name(), err)
	}
	return newDeleteResult(res), nil
}
