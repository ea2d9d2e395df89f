package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chachabrian/profast-backend/internal/models"
)

type RiderRepository struct {
	coll Collection
}

func NewRiderRepository(coll *mongo.Collection) *RiderRepository {
	return &RiderRepository{coll: NewCollection(coll)}
}

func (r *RiderRepository) Create(ctx context.Context, application models.Document) (InsertResult, error) {
	return r.coll.InsertOne(ctx, application)
}

func (r *RiderRepository) ListByStatus(ctx context.Context, status string) ([]models.Document, error) {
	riders := []models.Document{}
	opts := FindOptions{Sort: bson.D{{Key: models.RiderCreatedAt, Value: -1}}}
	if err := r.coll.FindMany(ctx, bson.M{models.RiderStatus: status}, opts, &riders); err != nil {
		return nil, err
	}
	return riders, nil
}

func (r *RiderRepository) UpdateStatus(ctx context.Context, id, status string) (UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{models.RiderStatus: status}})
}
