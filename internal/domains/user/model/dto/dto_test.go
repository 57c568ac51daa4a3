package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingDto "carserv/internal/domains/booking/model/dto"
	"carserv/internal/domains/user/model"
	"carserv/internal/domains/user/model/dto"
	"carserv/shared/constant"
)

func TestRegisterUserRequest_ToModel(t *testing.T) {
	req := dto.RegisterUserRequest{
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "secret",
		Phone:    "081234567890",
	}

	user := req.ToModel()

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, user.Name)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, req.Password, user.Password, "password is stored as supplied")
	assert.Equal(t, req.Phone, user.Phone)
	assert.Equal(t, constant.ContextSystem, user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestUserResponse_FromModel(t *testing.T) {
	userModel := model.User{
		ID:       "user-id",
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "secret",
		Phone:    "081234567890",
	}

	var response dto.UserResponse
	response.FromModel(userModel)

	assert.Equal(t, userModel.ID, response.ID)
	assert.Equal(t, userModel.Name, response.Name)
	assert.Equal(t, userModel.Email, response.Email)
	assert.Equal(t, userModel.Phone, response.Phone)
	assert.NotNil(t, response.Bookings, "bookings default to an empty list")
	assert.Empty(t, response.Bookings)
}

func TestUserResponse_WithBookings(t *testing.T) {
	var response dto.UserResponse
	response.FromModel(model.User{ID: "user-id"})

	response.WithBookings([]bookingDto.BookingResponse{
		{ID: "booking-id", UserID: "user-id", Status: constant.BookingStatusPending},
	})

	assert.Len(t, response.Bookings, 1)
	assert.Equal(t, "booking-id", response.Bookings[0].ID)
}
