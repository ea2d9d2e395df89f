package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chachabrian/profast-backend/internal/models"
)

type PaymentRepository struct {
	payments        Collection
	parcels         Collection
	client          *mongo.Client
	useTransactions bool
}

// NewPaymentRepository needs the parcels collection because recording a
// payment also flips the parcel's payment_status. With useTransactions both
// writes commit or abort together; standalone servers must disable it.
func NewPaymentRepository(payments, parcels *mongo.Collection, useTransactions bool) *PaymentRepository {
	return &PaymentRepository{
		payments:        NewCollection(payments),
		parcels:         NewCollection(parcels),
		client:          payments.Database().Client(),
		useTransactions: useTransactions,
	}
}

// Record marks the parcel paid and appends the payment. It fails with
// ErrNotFound, writing nothing, when the parcel is missing or already paid.
func (r *PaymentRepository) Record(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	if !r.useTransactions {
		return r.record(ctx, payment)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	id, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.record(sc, payment)
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id.(primitive.ObjectID), nil
}

func (r *PaymentRepository) record(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	update := bson.M{"$set": bson.M{models.ParcelPaymentStatus: models.PaymentStatusPaid}}
	res, err := r.parcels.UpdateOne(ctx, bson.M{"_id": payment.ParcelID}, update)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if res.ModifiedCount == 0 {
		return primitive.NilObjectID, fmt.Errorf("parcel %s unpaid: %w", payment.ParcelID.Hex(), ErrNotFound)
	}

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if _, err := r.payments.InsertOne(ctx, payment); err != nil {
		return primitive.NilObjectID, err
	}
	return payment.ID, nil
}

// ListByEmail returns the payer's history, most recent first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	payments := []models.Payment{}
	opts := FindOptions{Sort: bson.D{{Key: "paid_at", Value: -1}}}
	if err := r.payments.FindMany(ctx, bson.M{"email": email}, opts, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
