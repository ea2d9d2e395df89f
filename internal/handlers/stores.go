package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/models"
)

// Store interfaces mirror the repositories in internal/database.

type ParcelStore interface {
	List(ctx context.Context, createdBy string) ([]models.Document, error)
	Get(ctx context.Context, id string) (models.Document, error)
	Create(ctx context.Context, parcel models.Document) (database.InsertResult, error)
	Delete(ctx context.Context, id string) (database.DeleteResult, error)
}

type UserStore interface {
	Search(ctx context.Context, emailSubstring string) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.Document) (database.InsertResult, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (database.UpdateResult, error)
	SetRoleByEmail(ctx context.Context, email string, role models.Role) (database.UpdateResult, error)
}

type RiderStore interface {
	Create(ctx context.Context, application models.Document) (database.InsertResult, error)
	ListByStatus(ctx context.Context, status string) ([]models.Document, error)
	UpdateStatus(ctx context.Context, id, status string) (database.UpdateResult, error)
}

type PaymentStore interface {
	Record(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type TrackingStore interface {
	Append(ctx context.Context, event *models.TrackingLog) (database.InsertResult, error)
}

var (
	_ ParcelStore   = (*database.ParcelRepository)(nil)
	_ UserStore     = (*database.UserRepository)(nil)
	_ RiderStore    = (*database.RiderRepository)(nil)
	_ PaymentStore  = (*database.PaymentRepository)(nil)
	_ TrackingStore = (*database.TrackingRepository)(nil)
)
