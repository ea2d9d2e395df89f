package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chachabrian/profast-backend/internal/models"
)

type ParcelRepository struct {
	coll Collection
}

func NewParcelRepository(coll *mongo.Collection) *ParcelRepository {
	return &ParcelRepository{coll: NewCollection(coll)}
}

// List returns parcels newest first, restricted to createdBy when non-empty.
func (r *ParcelRepository) List(ctx context.Context, createdBy string) ([]models.Document, error) {
	filter := bson.M{}
	if createdBy != "" {
		filter[models.ParcelCreatedBy] = createdBy
	}

	parcels := []models.Document{}
	opts := FindOptions{Sort: bson.D{{Key: models.ParcelCreatedAt, Value: -1}}}
	if err := r.coll.FindMany(ctx, filter, opts, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *ParcelRepository) Get(ctx context.Context, id string) (models.Document, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var parcel models.Document
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, &parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

func (r *ParcelRepository) Create(ctx context.Context, parcel models.Document) (InsertResult, error) {
	return r.coll.InsertOne(ctx, parcel)
}

func (r *ParcelRepository) Delete(ctx context.Context, id string) (DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return DeleteResult{}, err
	}
	return r.coll.DeleteOne(ctx, bson.M{"_id": oid})
}
