package models

const (
	RiderStatusPending = "pending"
	RiderStatusActive  = "active"
)

const (
	RiderStatus    = "status"
	RiderEmail     = "email"
	RiderCreatedAt = "created_at"
)
