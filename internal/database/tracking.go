package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chachabrian/profast-backend/internal/models"
)

type TrackingRepository struct {
	coll Collection
}

func NewTrackingRepository(coll *mongo.Collection) *TrackingRepository {
	return &TrackingRepository{coll: NewCollection(coll)}
}

func (r *TrackingRepository) Append(ctx context.Context, event *models.TrackingLog) (InsertResult, error) {
	return r.coll.InsertOne(ctx, event)
}
