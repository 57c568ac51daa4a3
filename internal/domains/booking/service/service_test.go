package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carserv/config"
	kafkaMocks "carserv/infras/kafka/mocks"
	"carserv/infras/otel/mocks"
	bookingMocks "carserv/internal/domains/booking/mocks"
	"carserv/internal/domains/booking/model"
	"carserv/internal/domains/booking/model/dto"
	"carserv/internal/domains/booking/service"
	userMocks "carserv/internal/domains/user/mocks"
	cacheMocks "carserv/shared/cache/mocks"
	"carserv/shared/constant"
	"carserv/shared/failure"
	"carserv/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockUserRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation forces pending status",
			req: dto.CreateBookingRequest{
				UserID:      "user-id",
				BikeModel:   "Kawasaki W175",
				ServiceType: "oil change",
				BookingDate: "2025-10-01",
				Status:      "CONFIRMED",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, constant.BookingStatusPending, booking.Status)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "user does not exist",
			req: dto.CreateBookingRequest{
				UserID:      "missing-user",
				BikeModel:   "Kawasaki W175",
				ServiceType: "oil change",
				BookingDate: "2025-10-01",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed booking date",
			req: dto.CreateBookingRequest{
				UserID:      "user-id",
				BikeModel:   "Kawasaki W175",
				ServiceType: "oil change",
				BookingDate: "01-10-2025",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				UserID:      "user-id",
				BikeModel:   "Kawasaki W175",
				ServiceType: "oil change",
				BookingDate: "2025-10-01",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

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

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, constant.BookingStatusPending, res.Status)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestBookingService_GetUserBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockUserRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name       string
		userID     string
		setupMock  func()
		wantErr    bool
		wantLength int
	}{
		{
			name:   "bookings found",
			userID: "user-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "booking:user:user-id", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
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
			wantErr:    false,
			wantLength: 1,
		},
		{
			name:   "no bookings yields empty list",
			userID: "user-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "booking:user:user-id", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
			},
			wantErr:    false,
			wantLength: 0,
		},
		{
			name:   "repository error",
			userID: "user-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "booking:user:user-id", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetUserBookings(context.Background(), tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Bookings, tt.wantLength)
			}
		})
	}
}

func TestBookingService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockUserRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name       string
		id         string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "status found",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "booking:status:booking-id", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", Status: "CONFIRMED"}, nil)
			},
			wantErr:    false,
			wantStatus: "CONFIRMED",
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "booking:status:missing-id", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetStatus(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}
