package models

import "go.mongodb.org/mongo-driver/bson"

// Parcel documents are stored exactly as the client sent them; only the
// fields the API itself reads or writes are named here.
const (
	ParcelCreatedBy     = "created_by"
	ParcelCreatedAt     = "createdAt"
	ParcelPaymentStatus = "payment_status"
)

const PaymentStatusPaid = "paid"

// Document is a schemaless record (parcel, rider application, new user).
type Document = bson.M
