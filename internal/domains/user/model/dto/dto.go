package dto

import (
	"github.com/google/uuid"

	bookingDto "carserv/internal/domains/booking/model/dto"
	"carserv/internal/domains/user/model"
	"carserv/shared/constant"
	gModel "carserv/shared/model"
	"carserv/shared/timezone"
)

type RegisterUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
}

func (r *RegisterUserRequest) ToModel() model.User {
	return model.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       string                       `json:"id"`
	Name     string                       `json:"name"`
	Email    string                       `json:"email"`
	Phone    string                       `json:"phone"`
	Bookings []bookingDto.BookingResponse `json:"bookings"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	r.Phone = user.Phone
	r.Bookings = []bookingDto.BookingResponse{}
}

func (r *UserResponse) WithBookings(bookings []bookingDto.BookingResponse) {
	r.Bookings = bookings
}
