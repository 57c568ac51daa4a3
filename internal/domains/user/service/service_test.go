package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carserv/config"
	"carserv/infras/otel/mocks"
	bookingMocks "carserv/internal/domains/booking/mocks"
	bookingModel "carserv/internal/domains/booking/model"
	userMocks "carserv/internal/domains/user/mocks"
	"carserv/internal/domains/user/model"
	"carserv/internal/domains/user/model/dto"
	"carserv/internal/domains/user/service"
	"carserv/shared/constant"
	"carserv/shared/failure"
	gModel "carserv/shared/model"
	"carserv/shared/timezone"
)

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.RegisterUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterUserRequest{
				Name:     "Budi Santoso",
				Email:    "budi@example.com",
				Password: "secret",
				Phone:    "081234567890",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			req: dto.RegisterUserRequest{
				Name:     "Budi Santoso",
				Email:    "budi@example.com",
				Password: "secret",
				Phone:    "081234567890",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.RegisterUserRequest{
				Name:     "Budi Santoso",
				Email:    "budi@example.com",
				Password: "secret",
				Phone:    "081234567890",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.Email, res.Email)
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockOtel)

	storedUser := model.User{
		ID:       "user-id",
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "secret",
		Phone:    "081234567890",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}

	tests := []struct {
		name         string
		req          dto.LoginRequest
		setupMock    func()
		wantErr      bool
		wantCode     int
		wantBookings int
	}{
		{
			name: "successful login with bookings",
			req: dto.LoginRequest{
				Email:    "budi@example.com",
				Password: "secret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						{
							ID:          "booking-id",
							UserID:      "user-id",
							BikeModel:   "Kawasaki W175",
							ServiceType: "oil change",
							BookingDate: timezone.Now(),
							Status:      constant.BookingStatusPending,
						},
					}, nil)
			},
			wantErr:      false,
			wantBookings: 1,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "secret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "budi@example.com",
				Password: "not-the-password",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Email:    "budi@example.com",
				Password: "secret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, storedUser.ID, res.ID)
				assert.Len(t, res.Bookings, tt.wantBookings)
			}
		})
	}
}
