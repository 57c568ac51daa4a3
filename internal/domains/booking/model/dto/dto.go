package dto

import (
	"time"

	"github.com/google/uuid"

	"carserv/internal/domains/booking/model"
	"carserv/shared/constant"
	gDto "carserv/shared/dto"
	gModel "carserv/shared/model"
	"carserv/shared/timezone"
)

// CreateBookingRequest carries the caller-supplied booking fields. A status
// value may be present in the payload but is ignored: every booking starts
// as PENDING.
type CreateBookingRequest struct {
	UserID      string `json:"user_id"      validate:"required"`
	BikeModel   string `json:"bike_model"   validate:"required"`
	ServiceType string `json:"service_type" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required"`
	Status      string `json:"status"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		UserID:      c.UserID,
		BikeModel:   c.BikeModel,
		ServiceType: c.ServiceType,
		BookingDate: bookingDate,
		Status:      constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}, nil
}

type BookingResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	BikeModel   string        `json:"bike_model"`
	ServiceType string        `json:"service_type"`
	BookingDate string        `json:"booking_date"`
	Status      string        `json:"status"`
	Metadata    gDto.Metadata `json:"metadata"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.BikeModel = model.BikeModel
	r.ServiceType = model.ServiceType
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// BookingEvent is the payload published to Kafka on booking lifecycle changes.
type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id,omitempty"`
	Status     string `json:"status,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
