package model

import (
	"time"

	"carserv/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldBikeModel   = "bike_model"
	FieldServiceType = "service_type"
	FieldBookingDate = "booking_date"
	FieldStatus      = "status"
)

// Booking is a single service request owned by one user. Status starts as
// PENDING and is afterwards overwritten verbatim by admin updates; the
// descriptive fields are pass-through data the services never inspect.
type Booking struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	BikeModel   string    `db:"bike_model"`
	ServiceType string    `db:"service_type"`
	BookingDate time.Time `db:"booking_date"`
	Status      string    `db:"status"`
	model.Metadata
}
